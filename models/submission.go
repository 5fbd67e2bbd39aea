package models

type SubmissionState string

const (
	StateSubmitting SubmissionState = "submitting"
	StateSuccess    SubmissionState = "success"
	StateError      SubmissionState = "error"
)

// Submission records one attempt to forward a form to the webhook.
type Submission struct {
	ID         string          `json:"id"`
	State      SubmissionState `json:"state"`
	Name       string          `json:"name,omitempty"`
	FileName   string          `json:"file_name,omitempty"`
	Message    string          `json:"message,omitempty"`
	Error      string          `json:"error,omitempty"`
	ChartCount int             `json:"chart_count"`
	Time       string          `json:"time"`
	Expiry     string          `json:"expiry"`
}
