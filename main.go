package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/CorrelAid/chart_submission_portal/handlers"
	"github.com/CorrelAid/chart_submission_portal/inits"
	"github.com/CorrelAid/chart_submission_portal/operations"
	"github.com/CorrelAid/chart_submission_portal/routines"
)

func main() {
	cfg := inits.ConfigInit(".env")
	if !cfg.WebhookConfigured() {
		log.Println("WEBHOOK_URL is not set, submissions are disabled")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db := inits.DBInit()
	store := operations.NewSubmissionStore(db, cfg.SubmissionTTL)
	go routines.StartCleanupRoutine(ctx, store, cfg.CleanupInterval)

	webhook := operations.NewWebhookClient(cfg.WebhookURL, nil)
	router := handlers.SetupRouter(handlers.NewHandler(cfg, webhook, store))

	log.Printf("Chart submission portal listening on :%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
