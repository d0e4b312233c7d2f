// Package config builds the process configuration once at startup; core
// components receive values explicitly and never read the environment.
package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all environment-driven settings for a report run.
type Config struct {
	// Delivery credentials. All three are required; a missing one aborts the
	// run before any fetch is attempted.
	SenderEmail    string `envconfig:"SENDER_EMAIL" required:"true"`
	SenderPassword string `envconfig:"SENDER_PASSWORD" required:"true"`
	RecipientEmail string `envconfig:"RECIPIENT_EMAIL" required:"true"`

	SMTPHost string `envconfig:"SMTP_HOST" default:"smtp.gmail.com"`
	SMTPPort int    `envconfig:"SMTP_PORT" default:"465"`

	// StatePath is the reference state file. Ignored when PostgresDSN is set,
	// which switches the state backend to PostgreSQL.
	StatePath   string `envconfig:"STATE_PATH" default:"data/references.json"`
	PostgresDSN string `envconfig:"POSTGRES_DSN"`

	HiringIntervalDays int           `envconfig:"HIRING_INTERVAL_DAYS" default:"10"`
	HiringFetchDelay   time.Duration `envconfig:"HIRING_FETCH_DELAY" default:"2s"`
}

// Load reads configuration from the environment, preceded by a best-effort
// .env load. Missing required values fail here, before any network call.
func Load() (*Config, error) {
	// .env is a development convenience; its absence is not an error.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("missing configuration: %w", err)
	}

	if cfg.HiringIntervalDays < 1 {
		return nil, fmt.Errorf("missing configuration: HIRING_INTERVAL_DAYS must be at least 1, got %d", cfg.HiringIntervalDays)
	}

	return &cfg, nil
}
