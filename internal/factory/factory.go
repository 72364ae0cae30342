package factory

import (
	"io"
	"log/slog"

	"github.com/fairhand/fairhand/internal/dependencies/clock"
	"github.com/fairhand/fairhand/internal/dependencies/random"
	"github.com/fairhand/fairhand/internal/services/auth"
	"github.com/fairhand/fairhand/internal/services/match"
	"github.com/fairhand/fairhand/internal/storage"
	"github.com/fairhand/fairhand/internal/storage/memory"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	AuthService     *auth.Service
	MatchController *match.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// AuthConfig holds configuration for the auth service (optional)
	// If zero value, defaults to auth.DefaultConfig()
	AuthConfig auth.Config
	// MatchConfig holds configuration for the match controller (optional)
	// If zero value, defaults to match.DefaultConfig()
	MatchConfig match.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	store := memory.New()

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	// Use default configs if not provided
	authCfg := cfg.AuthConfig
	if authCfg.SessionDuration == 0 {
		authCfg = auth.DefaultConfig()
	}

	return newWithDependencies(store, clk, rnd, authCfg, cfg.MatchConfig, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, authCfg auth.Config, matchCfg match.Config, logger *slog.Logger) *App {
	authService := auth.New(store, clk, authCfg, logger)
	matchController := match.NewController(store, clk, rnd, matchCfg, logger)

	return &App{
		Storage:         store,
		Clock:           clk,
		Random:          rnd,
		AuthService:     authService,
		MatchController: matchController,
	}
}
