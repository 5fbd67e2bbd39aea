package inits

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultMaxFileSize     = 10 << 20 // 10 MiB
	DefaultRateLimit       = 30       // requests per minute per IP
	DefaultSubmissionTTL   = 24 * time.Hour
	DefaultCleanupInterval = time.Hour
)

// Config is read once at startup and passed to everything that needs it.
type Config struct {
	WebhookURL         string
	Port               string
	MaxFileSize        int
	RateLimit          float64
	AllowedDomains     []string
	TrustedImageHosts  []string
	TurnstileSecretKey string
	TurnstileSiteKey   string
	TestToken          string
	ReleaseMode        bool
	SubmissionTTL      time.Duration
	CleanupInterval    time.Duration
}

// ConfigInit loads an optional .env file and reads the environment.
func ConfigInit(envFile string) Config {
	if err := godotenv.Load(envFile); err != nil {
		log.Printf("No %s file loaded, using process environment", envFile)
	}
	return ConfigFromEnv(os.Getenv)
}

// ConfigFromEnv builds a Config from a lookup function so tests need not
// touch the process environment.
func ConfigFromEnv(getenv func(string) string) Config {
	webhook := strings.TrimSpace(getenv("WEBHOOK_URL"))
	if webhook == "" {
		webhook = strings.TrimSpace(getenv("N8N_WEBHOOK_URL"))
	}

	return Config{
		WebhookURL:         webhook,
		Port:               getString(getenv, "PORT", "8080"),
		MaxFileSize:        getInt(getenv, "MAX_FILE_SIZE", DefaultMaxFileSize),
		RateLimit:          float64(getInt(getenv, "RATE_LIMIT", DefaultRateLimit)),
		AllowedDomains:     getList(getenv, "ALLOWED_DOMAINS"),
		TrustedImageHosts:  getList(getenv, "TRUSTED_IMAGE_HOSTS"),
		TurnstileSecretKey: getenv("TURNSTILE_SECRET_KEY"),
		TurnstileSiteKey:   getenv("TURNSTILE_SITE_KEY"),
		TestToken:          getenv("TEST_TOKEN"),
		ReleaseMode:        getenv("GIN_MODE") == "release",
		SubmissionTTL:      getDuration(getenv, "SUBMISSION_TTL", DefaultSubmissionTTL),
		CleanupInterval:    getDuration(getenv, "CLEANUP_INTERVAL", DefaultCleanupInterval),
	}
}

// WebhookConfigured reports whether submissions can be forwarded at all.
func (c Config) WebhookConfigured() bool {
	return c.WebhookURL != ""
}

// TurnstileEnabled reports whether submissions must carry a Turnstile token.
func (c Config) TurnstileEnabled() bool {
	return c.TurnstileSecretKey != ""
}

func getString(getenv func(string) string, key, def string) string {
	if v := strings.TrimSpace(getenv(key)); v != "" {
		return v
	}
	return def
}

func getInt(getenv func(string) string, key string, def int) int {
	v := strings.TrimSpace(getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("Ignoring invalid %s=%q, using %d", key, v, def)
		return def
	}
	return n
}

func getDuration(getenv func(string) string, key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("Ignoring invalid %s=%q, using %s", key, v, def)
		return def
	}
	return d
}

func getList(getenv func(string) string, key string) []string {
	var out []string
	for _, part := range strings.Split(getenv(key), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
