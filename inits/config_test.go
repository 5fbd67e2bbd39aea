package inits

import (
	"testing"
	"time"
)

func envFrom(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestConfigFromEnv_Defaults(t *testing.T) {
	t.Parallel()

	cfg := ConfigFromEnv(envFrom(nil))
	if cfg.WebhookConfigured() {
		t.Fatalf("expected webhook unconfigured")
	}
	if cfg.Port != "8080" || cfg.MaxFileSize != DefaultMaxFileSize || cfg.RateLimit != DefaultRateLimit {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.SubmissionTTL != DefaultSubmissionTTL || cfg.CleanupInterval != DefaultCleanupInterval {
		t.Fatalf("unexpected durations: %+v", cfg)
	}
	if cfg.TurnstileEnabled() || cfg.ReleaseMode {
		t.Fatalf("unexpected flags: %+v", cfg)
	}
}

func TestConfigFromEnv_Values(t *testing.T) {
	t.Parallel()

	cfg := ConfigFromEnv(envFrom(map[string]string{
		"N8N_WEBHOOK_URL":      " https://n8n.example.com/webhook/x ",
		"PORT":                 "9090",
		"MAX_FILE_SIZE":        "2048",
		"RATE_LIMIT":           "5",
		"ALLOWED_DOMAINS":      "a.example.com, ,b.example.com",
		"TRUSTED_IMAGE_HOSTS":  "quickchart.io",
		"TURNSTILE_SECRET_KEY": "secret",
		"GIN_MODE":             "release",
		"SUBMISSION_TTL":       "2h",
		"CLEANUP_INTERVAL":     "bogus",
	}))

	if cfg.WebhookURL != "https://n8n.example.com/webhook/x" {
		t.Fatalf("unexpected webhook url %q", cfg.WebhookURL)
	}
	if cfg.Port != "9090" || cfg.MaxFileSize != 2048 || cfg.RateLimit != 5 {
		t.Fatalf("unexpected values: %+v", cfg)
	}
	if len(cfg.AllowedDomains) != 2 || cfg.AllowedDomains[1] != "b.example.com" {
		t.Fatalf("unexpected allowed domains: %v", cfg.AllowedDomains)
	}
	if len(cfg.TrustedImageHosts) != 1 || !cfg.TurnstileEnabled() || !cfg.ReleaseMode {
		t.Fatalf("unexpected values: %+v", cfg)
	}
	if cfg.SubmissionTTL != 2*time.Hour || cfg.CleanupInterval != DefaultCleanupInterval {
		t.Fatalf("unexpected durations: %+v", cfg)
	}
}

func TestConfigFromEnv_WebhookURLWins(t *testing.T) {
	t.Parallel()

	cfg := ConfigFromEnv(envFrom(map[string]string{
		"WEBHOOK_URL":     "https://primary",
		"N8N_WEBHOOK_URL": "https://alias",
	}))
	if cfg.WebhookURL != "https://primary" {
		t.Fatalf("expected WEBHOOK_URL to win, got %q", cfg.WebhookURL)
	}
}

func TestDBInit_SchemaValid(t *testing.T) {
	t.Parallel()

	if db := DBInit(); db == nil {
		t.Fatalf("expected db")
	}
}
