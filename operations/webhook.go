package operations

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/CorrelAid/chart_submission_portal/models"
)

const (
	DefaultMessage        = "Success"
	NonJSONMessage        = "Submitted successfully (non-JSON response)"
	NoResponseBody        = "No response body"
	NetworkFailureMessage = "Failed to reach webhook (network/URL issue)"
)

var ErrMissingWebhook = errors.New("missing WEBHOOK_URL")

// HTTPError is returned when the webhook answers with a non-2xx status.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	body := e.Body
	if strings.TrimSpace(body) == "" {
		body = NoResponseBody
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, body)
}

// NetworkError wraps a failure to complete the request at all.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return NetworkFailureMessage }

func (e *NetworkError) Unwrap() error { return e.Err }

// WebhookClient forwards submissions to the configured automation webhook.
type WebhookClient struct {
	url    string
	client *http.Client
}

// NewWebhookClient returns a client for url. A nil httpClient means
// http.DefaultClient, which has no timeout.
func NewWebhookClient(url string, httpClient *http.Client) *WebhookClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &WebhookClient{url: url, client: httpClient}
}

func (w *WebhookClient) Configured() bool {
	return w != nil && w.url != ""
}

// Submit sends one multipart POST and interprets the reply. It never retries.
func (w *WebhookClient) Submit(ctx context.Context, processedFormData models.ProcessedFormData) (models.Result, error) {
	if !w.Configured() {
		return models.Result{}, ErrMissingWebhook
	}

	body, contentType, err := buildMultipartBody(processedFormData)
	if err != nil {
		return models.Result{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, body)
	if err != nil {
		return models.Result{}, &NetworkError{Err: err}
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := w.client.Do(req)
	if err != nil {
		log.Printf("Webhook request failed: %v", err)
		return models.Result{}, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("Reading webhook response failed: %v", err)
		return models.Result{}, &NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("Webhook answered %s", resp.Status)
		return models.Result{}, &HTTPError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	if isJSON(resp.Header.Get("Content-Type")) {
		return ParseJSONResponse(respBody)
	}

	message := string(respBody)
	if strings.TrimSpace(message) == "" {
		message = NonJSONMessage
	}
	return models.Result{Message: message, Charts: []models.Chart{}}, nil
}

// ParseJSONResponse reads {message, charts} with defaults for anything
// missing or of the wrong shape. Only a body that is not JSON at all is an
// error.
func ParseJSONResponse(body []byte) (models.Result, error) {
	result := models.Result{Message: DefaultMessage, Charts: []models.Chart{}, JSON: true}

	if !json.Valid(body) {
		return models.Result{}, fmt.Errorf("invalid JSON response from webhook")
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return result, nil
	}

	if raw, ok := fields["message"]; ok {
		if message, ok := decodeMessage(raw); ok {
			result.Message = message
		}
	}

	if raw, ok := fields["charts"]; ok {
		result.Charts = decodeCharts(raw)
	}
	return result, nil
}

func decodeMessage(raw json.RawMessage) (string, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return "", false
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		return s, true
	}
	return string(trimmed), true
}

func decodeCharts(raw json.RawMessage) []models.Chart {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil || items == nil {
		return []models.Chart{}
	}

	charts := make([]models.Chart, 0, len(items))
	for _, item := range items {
		var chart models.Chart
		if err := json.Unmarshal(item, &chart); err != nil {
			continue
		}
		charts = append(charts, chart)
	}
	return charts
}

func buildMultipartBody(processedFormData models.ProcessedFormData) (*bytes.Buffer, string, error) {
	var requestBody bytes.Buffer
	writer := multipart.NewWriter(&requestBody)

	fields := []struct {
		name  string
		value string
	}{
		{"name", processedFormData.Name},
		{"notes", processedFormData.Notes},
	}
	for _, field := range fields {
		if err := writer.WriteField(field.name, field.value); err != nil {
			return nil, "", fmt.Errorf("add field %s: %w", field.name, err)
		}
	}

	if processedFormData.HasFile() {
		part, err := writer.CreateFormFile("file", processedFormData.FileName)
		if err != nil {
			return nil, "", fmt.Errorf("create file part: %w", err)
		}
		if _, err := part.Write(processedFormData.FileContent); err != nil {
			return nil, "", fmt.Errorf("write file part: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart writer: %w", err)
	}
	return &requestBody, writer.FormDataContentType(), nil
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.Contains(strings.ToLower(contentType), "application/json")
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}
