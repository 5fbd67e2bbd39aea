package handlers

import (
	"errors"
	"net/http"

	"github.com/CorrelAid/chart_submission_portal/models"
	"github.com/CorrelAid/chart_submission_portal/operations"
	"github.com/gin-gonic/gin"
)

const NoChartsMessage = "No chart URLs provided. Go back and submit a file."

// SubmitPageData feeds templates/submit.html.
type SubmitPageData struct {
	Configured       bool
	ConfigError      string
	Message          string
	Error            string
	Name             string
	Notes            string
	Accept           string
	TurnstileSiteKey string
}

// ViewPageData feeds templates/view.html.
type ViewPageData struct {
	Charts  []models.Chart
	Empty   string
	BackURL string
}

func (h *Handler) submitPageData() SubmitPageData {
	data := SubmitPageData{
		Configured: h.webhook.Configured(),
		Accept:     acceptAttr(),
	}
	if !data.Configured {
		data.ConfigError = operations.ErrMissingWebhook.Error()
	}
	if h.cfg.TurnstileEnabled() {
		data.TurnstileSiteKey = h.cfg.TurnstileSiteKey
	}
	return data
}

// SubmitPage renders the empty form, or the configuration banner.
func (h *Handler) SubmitPage(c *gin.Context) {
	c.HTML(http.StatusOK, "submit.html", h.submitPageData())
}

// SubmitForm forwards the posted form. Chart results redirect to the viewer;
// everything else is shown on the form page.
func (h *Handler) SubmitForm(c *gin.Context) {
	data := h.submitPageData()

	_, result, err := h.submit(c)
	if err != nil {
		data.Name = c.PostForm("name")
		data.Notes = c.PostForm("notes")
		if !errors.Is(err, operations.ErrMissingWebhook) {
			data.Error = err.Error()
		}
		c.HTML(statusFor(err), "submit.html", data)
		return
	}

	if viewerURL := operations.ViewerURL(result.Charts); viewerURL != "" {
		c.Redirect(http.StatusSeeOther, viewerURL)
		return
	}

	data.Message = result.Message
	c.HTML(http.StatusOK, "submit.html", data)
}

// ViewPage renders up to two charts from url1/url2 and title1/title2.
func (h *Handler) ViewPage(c *gin.Context) {
	charts := operations.ChartsFromQuery(c.Request.URL.Query(), h.images.Validate)
	data := ViewPageData{Charts: charts, BackURL: "/"}
	if len(charts) == 0 {
		data.Empty = NoChartsMessage
	}
	c.HTML(http.StatusOK, "view.html", data)
}
