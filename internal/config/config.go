package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultModelURL is the hosted text-generation endpoint used when HF_MODEL_URL is unset.
const DefaultModelURL = "https://api-inference.huggingface.co/models/microsoft/DialoGPT-medium"

// Config holds all configuration for the application.
type Config struct {
	// HFAPIToken is the bearer token sent to the inference endpoint.
	// It is intentionally not validated; an empty token is sent as-is.
	HFAPIToken         string
	HFModelURL         string
	APIPort            string
	CORSAllowedOrigins []string
	LogLevel           slog.Level
	LogFormat          string
	ShutdownTimeout    time.Duration
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates the ones that have a fixed format.
// If a .env file exists in the current directory or a parent directory, it is loaded first.
// Environment variables already set take precedence over .env file values.
func Load() (*Config, error) {
	loadDotEnv()

	cfg := &Config{
		HFAPIToken:         os.Getenv("HF_API_TOKEN"),
		HFModelURL:         getEnv("HF_MODEL_URL", DefaultModelURL),
		APIPort:            getEnv("API_PORT", "8000"),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,https://your-app.vercel.app")),
		LogFormat:          strings.ToLower(getEnv("LOG_FORMAT", "text")),
	}

	u, err := url.Parse(cfg.HFModelURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("HF_MODEL_URL must be an absolute URL: %q", cfg.HFModelURL)
	}

	level, err := parseLogLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}

	timeout, err := time.ParseDuration(getEnv("SHUTDOWN_TIMEOUT", "5s"))
	if err != nil {
		return nil, fmt.Errorf("SHUTDOWN_TIMEOUT must be a valid duration: %w", err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("SHUTDOWN_TIMEOUT must be greater than 0")
	}
	cfg.ShutdownTimeout = timeout

	return cfg, nil
}

// loadDotEnv loads .env from the working directory, then from the nearest parent that has one.
func loadDotEnv() {
	_ = godotenv.Load()

	wd, err := os.Getwd()
	if err != nil {
		return
	}
	dir := wd
	for i := 0; i < 5; i++ {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return
		}
		dir = parent
	}
}

func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error: %w", err)
	}
	return level, nil
}

// splitList splits a comma-separated value, dropping empty entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
