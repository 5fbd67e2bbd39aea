package operations

import (
	"fmt"
	"log"
	"net/url"
	"strconv"

	"github.com/CorrelAid/chart_submission_portal/models"
)

// MaxViewerCharts is how many charts travel through the viewer query string.
const MaxViewerCharts = 2

const ViewerPath = "/view"

// ViewerQuery encodes the first MaxViewerCharts charts positionally as
// url1/title1 and url2/title2. Entries without a URL leave their slot empty.
func ViewerQuery(charts []models.Chart) url.Values {
	values := url.Values{}
	if len(charts) > MaxViewerCharts {
		charts = charts[:MaxViewerCharts]
	}
	for i, chart := range charts {
		if chart.URL == "" {
			continue
		}
		n := strconv.Itoa(i + 1)
		values.Set("url"+n, chart.URL)
		if chart.Title != "" {
			values.Set("title"+n, chart.Title)
		}
	}
	return values
}

// ViewerURL returns the viewer link for charts, or "" when none has a URL.
func ViewerURL(charts []models.Chart) string {
	values := ViewerQuery(charts)
	if len(values) == 0 {
		return ""
	}
	return ViewerPath + "?" + values.Encode()
}

// ChartsFromQuery rebuilds the chart list from viewer query parameters,
// keeping input order and dropping empty URLs. allow may be nil; when set,
// URLs it rejects are dropped too.
func ChartsFromQuery(values url.Values, allow func(string) error) []models.Chart {
	charts := make([]models.Chart, 0, MaxViewerCharts)
	for i := 1; i <= MaxViewerCharts; i++ {
		raw := values.Get("url" + strconv.Itoa(i))
		if raw == "" {
			continue
		}
		if allow != nil {
			if err := allow(raw); err != nil {
				log.Printf("Dropping chart url%d: %v", i, err)
				continue
			}
		}
		title := values.Get("title" + strconv.Itoa(i))
		if title == "" {
			title = fmt.Sprintf("Chart %d", len(charts)+1)
		}
		charts = append(charts, models.Chart{URL: raw, Title: title})
	}
	return charts
}
