// Package config loads runtime defaults from the environment.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the environment-driven defaults consumed by the CLI. The
// palette size bounds are passed through to the colour engine, which
// enforces but never computes them.
type Config struct {
	MinColours int
	MaxColours int
	NoColor    bool
}

const (
	defaultMinColours = 2
	defaultMaxColours = 9
)

// Load reads an optional .env file and the LEGIBLE_* environment
// variables, falling back to the built-in defaults. Bounds that make no
// sense (minimum below two, maximum below the minimum) are corrected
// rather than rejected.
func Load() Config {
	// Load .env file if it exists.
	_ = godotenv.Load()

	cfg := Config{
		MinColours: getEnvInt("LEGIBLE_MIN_COLOURS", defaultMinColours),
		MaxColours: getEnvInt("LEGIBLE_MAX_COLOURS", defaultMaxColours),
		NoColor:    getEnvBool("LEGIBLE_NO_COLOR", false),
	}

	if cfg.MinColours < 2 {
		cfg.MinColours = 2
	}
	if cfg.MaxColours < cfg.MinColours {
		cfg.MaxColours = defaultMaxColours
	}
	if cfg.MaxColours < cfg.MinColours {
		cfg.MaxColours = cfg.MinColours
	}

	return cfg
}

// getEnvInt reads an integer environment variable with a fallback.
func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

// getEnvBool reads a boolean environment variable with a fallback.
func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}
