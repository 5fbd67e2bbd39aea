package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/CorrelAid/chart_submission_portal/inits"
	"github.com/CorrelAid/chart_submission_portal/models"
	"github.com/CorrelAid/chart_submission_portal/operations"
	"github.com/CorrelAid/chart_submission_portal/validators"
	"github.com/gin-gonic/gin"
)

// TokenVerifier checks a bot-protection token for the client ip.
type TokenVerifier func(ctx context.Context, token, ip string) error

// Handler serves the submission and viewer pages and their JSON twins.
type Handler struct {
	cfg     inits.Config
	webhook *operations.WebhookClient
	store   *operations.SubmissionStore
	images  validators.ImageURLValidator
	verify  TokenVerifier
}

func NewHandler(cfg inits.Config, webhook *operations.WebhookClient, store *operations.SubmissionStore) *Handler {
	h := &Handler{
		cfg:     cfg,
		webhook: webhook,
		store:   store,
		images:  validators.ImageURLValidator{TrustedHosts: cfg.TrustedImageHosts},
	}
	if cfg.TurnstileEnabled() {
		h.verify = func(ctx context.Context, token, ip string) error {
			return validators.ValidateTurnstileToken(ctx, cfg, token, ip)
		}
	}
	return h
}

// formError marks problems with what the user sent.
type formError struct{ err error }

func (e *formError) Error() string { return e.err.Error() }
func (e *formError) Unwrap() error { return e.err }

// tokenError marks a failed bot-protection check.
type tokenError struct{ err error }

func (e *tokenError) Error() string { return "verification failed: " + e.err.Error() }
func (e *tokenError) Unwrap() error { return e.err }

// submit runs one submission end to end. The recorded submission always
// leaves the submitting state, even if the webhook call panics.
func (h *Handler) submit(c *gin.Context) (submission models.Submission, result models.Result, err error) {
	if !h.webhook.Configured() {
		return models.Submission{}, models.Result{}, operations.ErrMissingWebhook
	}

	if h.verify != nil {
		if verr := h.verify(c.Request.Context(), c.PostForm("cf-turnstile-response"), c.ClientIP()); verr != nil {
			return models.Submission{}, models.Result{}, &tokenError{err: verr}
		}
	}

	formData, err := readFormData(c)
	if err != nil {
		return models.Submission{}, models.Result{}, &formError{err: err}
	}

	processedFormData, err := validators.ValidateProcessFormData(formData, h.cfg.MaxFileSize)
	if err != nil {
		return models.Submission{}, models.Result{}, &formError{err: err}
	}

	submission, err = h.store.StartSubmission(processedFormData)
	if err != nil {
		return models.Submission{}, models.Result{}, fmt.Errorf("record submission: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("Submission %s panicked: %v", submission.ID, r)
			result = models.Result{}
			err = fmt.Errorf("submission aborted: %v", r)
		}
		finished, finishErr := h.store.FinishSubmission(submission.ID, result, err)
		if finishErr != nil {
			log.Printf("Could not finish submission %s: %v", submission.ID, finishErr)
			return
		}
		submission = finished
	}()

	result, err = h.webhook.Submit(c.Request.Context(), processedFormData)
	return submission, result, err
}

func readFormData(c *gin.Context) (models.FormData, error) {
	formData := models.FormData{
		Name:  c.PostForm("name"),
		Notes: c.PostForm("notes"),
	}

	file, err := c.FormFile("file")
	switch {
	case err == nil:
		if file.Filename != "" {
			formData.File = file
		}
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
	default:
		return models.FormData{}, fmt.Errorf("error getting file: %w", err)
	}
	return formData, nil
}

// statusFor maps a submission error onto the HTTP status we answer with.
func statusFor(err error) int {
	var fe *formError
	var te *tokenError
	switch {
	case errors.Is(err, operations.ErrMissingWebhook):
		return http.StatusServiceUnavailable
	case errors.As(err, &fe):
		if errors.Is(err, validators.ErrFileTooLarge) {
			return http.StatusRequestEntityTooLarge
		}
		return http.StatusBadRequest
	case errors.As(err, &te):
		return http.StatusForbidden
	default:
		// webhook HTTP, network and body failures
		return http.StatusBadGateway
	}
}
