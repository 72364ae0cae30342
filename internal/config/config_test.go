package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 24*time.Hour, cfg.SessionDuration)
	assert.Equal(t, time.Duration(0), cfg.PendingRoundMaxAge)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "9000")
	t.Setenv("SESSION_DURATION", "1h")
	t.Setenv("PENDING_ROUND_MAX_AGE", "5m")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()

	assert.Equal(t, "127.0.0.1:9000", cfg.Addr())
	assert.Equal(t, time.Hour, cfg.SessionDuration)
	assert.Equal(t, 5*time.Minute, cfg.PendingRoundMaxAge)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestInvalidValuesFallBack(t *testing.T) {
	t.Setenv("SESSION_DURATION", "not-a-duration")
	t.Setenv("LOG_LEVEL", "loud")

	cfg := Load()

	assert.Equal(t, 24*time.Hour, cfg.SessionDuration)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}
