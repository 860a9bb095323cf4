// Package config loads process-wide configuration once at startup.
// Values come from the environment, optionally seeded from a .env file.
package config

import (
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config carries every runtime setting. It is loaded once and passed
// explicitly to constructors; there are no hidden mutable globals.
type Config struct {
	// Port the HTTP server listens on.
	Port string

	// DBPath is the SQLite database file.
	DBPath string

	// Secret signs and verifies bearer tokens. Required.
	Secret string

	// TokenTTL is the bearer token lifetime. Zero issues tokens without an
	// expiration claim.
	TokenTTL time.Duration

	// UploadDir stores uploaded profile images.
	UploadDir string

	// LogDir, when set, redirects logs to a dated file under it.
	LogDir string
}

// ErrMissingSecret is returned when no token-signing secret is configured.
var ErrMissingSecret = errors.New("SECRET must be set")

// Load reads configuration from the environment. A .env file in the working
// directory is honored if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:      getEnv("PORT", "3000"),
		DBPath:    getEnv("DB_PATH", "./data/contas.db"),
		Secret:    os.Getenv("SECRET"),
		TokenTTL:  getEnvDuration("TOKEN_TTL", 0),
		UploadDir: getEnv("UPLOAD_DIR", "./uploads"),
		LogDir:    os.Getenv("LOG_DIR"),
	}

	if cfg.Secret == "" {
		return nil, ErrMissingSecret
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
