package handlers

import (
	"embed"
	"html/template"
	"strings"

	"github.com/CorrelAid/chart_submission_portal/validators"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded page templates.
func Templates() *template.Template {
	return template.Must(template.New("").ParseFS(templateFS, "templates/*.html"))
}

func acceptAttr() string {
	return strings.Join(validators.AllowedExtensions, ",")
}
