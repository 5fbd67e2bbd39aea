package validators

import "testing"

func TestImageURLValidator_Schemes(t *testing.T) {
	t.Parallel()

	v := ImageURLValidator{}
	for _, ok := range []string{"https://x/img.png", "http://charts.example.com/a.png"} {
		if err := v.Validate(ok); err != nil {
			t.Fatalf("%s: unexpected error %v", ok, err)
		}
	}
	for _, bad := range []string{"javascript:alert(1)", "data:image/png;base64,AAAA", "/relative.png", "ftp://x/a.png", "https://"} {
		if err := v.Validate(bad); err == nil {
			t.Fatalf("%s: expected rejection", bad)
		}
	}
}

func TestImageURLValidator_TrustedHosts(t *testing.T) {
	t.Parallel()

	v := ImageURLValidator{TrustedHosts: []string{"quickchart.io"}}
	if err := v.Validate("https://quickchart.io/chart?c=1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := v.Validate("https://cdn.QuickChart.io/a.png"); err != nil {
		t.Fatalf("expected subdomain allowed, got %v", err)
	}
	if err := v.Validate("https://evilquickchart.io/a.png"); err == nil {
		t.Fatalf("expected lookalike host rejected")
	}
	if err := v.Validate("https://example.com/a.png"); err == nil {
		t.Fatalf("expected untrusted host rejected")
	}
}
