// Package config holds the runtime configuration sourced from env vars.
package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration of the backend.
type Config struct {
	Port      string
	DBPath    string
	JWTSecret string
	JWTTTL    time.Duration
}

// Load reads configuration from the environment. A .env file is loaded
// first if one exists, without overriding variables that are already set.
func Load() (Config, error) {
	// A missing .env file is not an error
	_ = godotenv.Load()

	cfg := Config{
		Port:      fallback(os.Getenv("PORT"), "8080"),
		DBPath:    fallback(os.Getenv("DB_PATH"), "data/expense-tracker.db"),
		JWTSecret: strings.TrimSpace(os.Getenv("JWT_SECRET")),
		JWTTTL:    24 * time.Hour,
	}

	if minutes, err := strconv.Atoi(os.Getenv("JWT_TTL_MINUTES")); err == nil && minutes > 0 {
		cfg.JWTTTL = time.Duration(minutes) * time.Minute
	}

	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET is required")
	}

	return cfg, nil
}

// HTTPAddress returns the host:port pair for the HTTP server to bind to.
func (c Config) HTTPAddress() string {
	return ":" + c.Port
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}
