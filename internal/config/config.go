package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds server configuration loaded from the environment
type Config struct {
	// Host and Port for the HTTP server
	Host string
	Port string

	// SessionDuration is how long login sessions stay valid
	SessionDuration time.Duration

	// PendingRoundMaxAge bounds how long a committed round stays playable
	// Zero means rounds never expire
	PendingRoundMaxAge time.Duration

	// StaticDir is the path to static web assets
	StaticDir string

	// LogLevel sets the minimum log level ("debug", "info", "warn", "error")
	LogLevel slog.Level
}

// Load reads configuration from the environment
// A .env file in the working directory is loaded first if present
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Host:               getEnv("HOST", ""),
		Port:               getEnv("PORT", "8080"),
		SessionDuration:    getEnvAsDuration("SESSION_DURATION", 24*time.Hour),
		PendingRoundMaxAge: getEnvAsDuration("PENDING_ROUND_MAX_AGE", 0),
		StaticDir:          getEnv("STATIC_DIR", "internal/web/static"),
		LogLevel:           parseLogLevel(getEnv("LOG_LEVEL", "info")),
	}
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func parseLogLevel(value string) slog.Level {
	switch strings.ToLower(value) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
