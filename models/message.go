package models

// Message is the error envelope returned by JSON endpoints and middleware.
type Message struct {
	Status string `json:"status"`
	Body   string `json:"body"`
}
