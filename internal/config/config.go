package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const PROD_STRING = "prod"

// Config holds all application configuration loaded from environment.
type Config struct {
	IsProduction    bool
	ProdOrigins     string
	HTTPAddr        string
	UpstreamBaseURL string
	UpstreamTimeout time.Duration
	SessionDBPath   string
	SessionTTL      time.Duration
	AdminWhatsApp   string
}

// Load loads configuration from .env (optional) and environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		log.Printf("failed to load .env file: %v", err)
	}

	cfg := &Config{}

	// Production origin (default: empty)
	cfg.ProdOrigins = getEnv("PROD_ORIGINS", "")

	// Application environment (default: dev)
	appEnvStr := getEnv("APP_ENV", "dev")
	cfg.IsProduction = appEnvStr == PROD_STRING

	// HTTP listen address (default: :8080)
	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8080")

	// Base URL of the remote booking API is required
	cfg.UpstreamBaseURL = os.Getenv("API_BASE_URL")
	if cfg.UpstreamBaseURL == "" {
		return nil, fmt.Errorf("API_BASE_URL is required")
	}

	// Timeout for upstream API calls, parse as time.Duration (e.g. "15s").
	timeoutStr := getEnv("API_TIMEOUT", "15s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid API_TIMEOUT: %w", err)
	}
	cfg.UpstreamTimeout = timeout

	// SQLite file holding login sessions (default: siba_sessions.db)
	cfg.SessionDBPath = getEnv("SESSION_DB_PATH", "siba_sessions.db")

	// Session lifetime, parse as time.Duration (e.g. "12h").
	ttlStr := getEnv("SESSION_TTL", "12h")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}
	cfg.SessionTTL = ttl

	// WhatsApp number notified when the conference room is booked
	// (default: empty, handoff disabled).
	cfg.AdminWhatsApp = getEnv("ADMIN_WHATSAPP", "")

	return cfg, nil
}

// getEnv returns the value of the environment variable if set,
// otherwise returns the provided default value.
func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}
