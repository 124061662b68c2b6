package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	_ "github.com/joho/godotenv/autoload"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string

	// Gemini configuration
	GeminiAPIKey  string
	GeminiModel   string
	GeminiTimeout time.Duration
}

// Load creates a new Config instance from environment variables. A local
// .env file is picked up automatically via godotenv. The Gemini API key is
// the only required value: without it the process must not serve requests.
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:   getEnv("PORT", "8000"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	seconds := 30
	if v := os.Getenv("GEMINI_TIMEOUT_SECONDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid GEMINI_TIMEOUT_SECONDS value: %q", v)
		}
		seconds = n
	}
	cfg.GeminiTimeout = time.Duration(seconds) * time.Second

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
