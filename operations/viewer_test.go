package operations

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/CorrelAid/chart_submission_portal/models"
)

func TestViewerQuery_OnlyFirstTwoCharts(t *testing.T) {
	t.Parallel()

	values := ViewerQuery([]models.Chart{
		{URL: "https://x/1.png", Title: "One"},
		{URL: "https://x/2.png"},
		{URL: "https://x/3.png", Title: "Three"},
	})
	if values.Get("url1") != "https://x/1.png" || values.Get("title1") != "One" {
		t.Fatalf("unexpected first chart: %v", values)
	}
	if values.Get("url2") != "https://x/2.png" || values.Has("title2") {
		t.Fatalf("unexpected second chart: %v", values)
	}
	if values.Has("url3") || values.Has("title3") {
		t.Fatalf("third chart leaked into query: %v", values)
	}
}

func TestViewerURL_EmptyWithoutURLs(t *testing.T) {
	t.Parallel()

	if got := ViewerURL(nil); got != "" {
		t.Fatalf("expected empty viewer url, got %q", got)
	}
	if got := ViewerURL([]models.Chart{{Title: "no url"}}); got != "" {
		t.Fatalf("expected empty viewer url, got %q", got)
	}
}

func TestViewerURL_RoundTrip(t *testing.T) {
	t.Parallel()

	link := ViewerURL([]models.Chart{{URL: "https://x/img.png", Title: "Revenue"}})
	if !strings.HasPrefix(link, ViewerPath+"?") {
		t.Fatalf("unexpected viewer url %q", link)
	}
	if !strings.Contains(link, "url1=https%3A%2F%2Fx%2Fimg.png") {
		t.Fatalf("expected encoded url1 in %q", link)
	}

	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	charts := ChartsFromQuery(u.Query(), nil)
	if len(charts) != 1 || charts[0].URL != "https://x/img.png" || charts[0].Title != "Revenue" {
		t.Fatalf("unexpected charts: %+v", charts)
	}
}

func TestChartsFromQuery_DefaultTitlesAndOrder(t *testing.T) {
	t.Parallel()

	values := url.Values{}
	values.Set("url1", "https://x/a.png")
	values.Set("url2", "https://x/b.png")
	values.Set("title2", "Second")

	charts := ChartsFromQuery(values, nil)
	if len(charts) != 2 {
		t.Fatalf("expected 2 charts, got %d", len(charts))
	}
	if charts[0].Title != "Chart 1" || charts[0].URL != "https://x/a.png" {
		t.Fatalf("unexpected first chart: %+v", charts[0])
	}
	if charts[1].Title != "Second" || charts[1].URL != "https://x/b.png" {
		t.Fatalf("unexpected second chart: %+v", charts[1])
	}
}

func TestChartsFromQuery_EmptyEntriesFiltered(t *testing.T) {
	t.Parallel()

	values := url.Values{}
	values.Set("url1", "")
	values.Set("url2", "https://x/b.png")

	charts := ChartsFromQuery(values, nil)
	if len(charts) != 1 || charts[0].Title != "Chart 1" {
		t.Fatalf("unexpected charts: %+v", charts)
	}

	if got := ChartsFromQuery(url.Values{}, nil); len(got) != 0 {
		t.Fatalf("expected no charts, got %+v", got)
	}
}

func TestChartsFromQuery_AllowRejects(t *testing.T) {
	t.Parallel()

	values := url.Values{}
	values.Set("url1", "javascript:alert(1)")
	values.Set("url2", "https://x/b.png")

	allow := func(raw string) error {
		if strings.HasPrefix(raw, "https://") {
			return nil
		}
		return errors.New("rejected")
	}
	charts := ChartsFromQuery(values, allow)
	if len(charts) != 1 || charts[0].URL != "https://x/b.png" {
		t.Fatalf("unexpected charts: %+v", charts)
	}
}
