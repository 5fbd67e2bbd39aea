package handlers

import (
	"errors"
	"net/http"

	"github.com/CorrelAid/chart_submission_portal/models"
	"github.com/CorrelAid/chart_submission_portal/operations"
	"github.com/gin-gonic/gin"
)

type SubmitResponse struct {
	ID        string         `json:"id"`
	Message   string         `json:"message"`
	Charts    []models.Chart `json:"charts"`
	ViewerURL string         `json:"viewer_url,omitempty"`
}

// SubmitAPI is the JSON form of SubmitForm.
func (h *Handler) SubmitAPI(c *gin.Context) {
	submission, result, err := h.submit(c)
	if err != nil {
		c.JSON(statusFor(err), models.Message{
			Status: "Request Failed",
			Body:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, SubmitResponse{
		ID:        submission.ID,
		Message:   result.Message,
		Charts:    result.Charts,
		ViewerURL: operations.ViewerURL(result.Charts),
	})
}

// GetSubmission reports the recorded state of one submission.
func (h *Handler) GetSubmission(c *gin.Context) {
	submission, err := h.store.GetSubmission(c.Param("id"))
	if errors.Is(err, operations.ErrSubmissionNotFound) {
		c.JSON(http.StatusNotFound, models.Message{Status: "Not Found", Body: err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Message{Status: "Request Failed", Body: err.Error()})
		return
	}
	c.JSON(http.StatusOK, submission)
}

func (h *Handler) Health(c *gin.Context) {
	inFlight, err := h.store.CountByState(models.StateSubmitting)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "unhealthy", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":             "healthy",
		"webhook_configured": h.webhook.Configured(),
		"in_flight":          inFlight,
	})
}
