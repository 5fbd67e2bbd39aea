package models

import (
	"mime/multipart"
)

type FormData struct {
	File  *multipart.FileHeader
	Name  string
	Notes string
}

type ProcessedFormData struct {
	Name        string
	Notes       string
	FileName    string
	FileContent []byte
}

// HasFile reports whether a file part should be sent to the webhook.
func (p ProcessedFormData) HasFile() bool {
	return p.FileName != ""
}
