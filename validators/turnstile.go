package validators

import (
	"context"
	"errors"
	"log"

	"github.com/CorrelAid/chart_submission_portal/inits"
	"github.com/9ssi7/turnstile"
)

var (
	ErrTokenRequired = errors.New("token is required")
	ErrTokenInvalid  = errors.New("token_not_valid")
	ErrVerification  = errors.New("internal_server_error")
)

// ValidateTurnstileToken checks a Cloudflare Turnstile token. Outside release
// mode the configured test token is accepted without calling Cloudflare.
func ValidateTurnstileToken(ctx context.Context, cfg inits.Config, token string, ip string) error {
	if token == "" {
		log.Println("Token is required")
		return ErrTokenRequired
	}
	if !cfg.ReleaseMode && cfg.TestToken != "" && token == cfg.TestToken {
		log.Println("Test token used")
		return nil
	}

	srv := turnstile.New(turnstile.Config{
		Secret: cfg.TurnstileSecretKey,
	})
	ok, err := srv.Verify(ctx, token, ip)

	if err != nil {
		log.Println("Verification error:", err)
		return ErrVerification
	}
	if !ok {
		log.Println("Token not valid")
		return ErrTokenInvalid
	}
	return nil
}
