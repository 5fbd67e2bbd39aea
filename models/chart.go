package models

// Chart is one generated chart image returned by the webhook or rebuilt
// from viewer query parameters.
type Chart struct {
	URL   string `json:"url"`
	Title string `json:"title,omitempty"`
}

// Result is what a successful webhook call produced.
type Result struct {
	Message string  `json:"message"`
	Charts  []Chart `json:"charts"`
	JSON    bool    `json:"-"`
}
