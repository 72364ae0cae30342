package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/fairhand/fairhand/internal/middleware"
	"github.com/fairhand/fairhand/internal/services/auth"
	"github.com/fairhand/fairhand/internal/services/match"
	"github.com/fairhand/fairhand/internal/web/handler"
	webmiddleware "github.com/fairhand/fairhand/internal/web/middleware"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger          *slog.Logger
	AuthService     *auth.Service
	MatchController *match.Controller
	StaticDir       string // Path to static files directory
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := webmiddleware.Recovery(cfg.Logger)
	flashMiddleware := webmiddleware.Flash()
	authMiddleware := webmiddleware.Auth(cfg.AuthService)
	optionalAuthMiddleware := webmiddleware.OptionalAuth(cfg.AuthService)

	// Apply global middleware to all routes
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	// Create handlers
	authHandler := handler.NewAuthHandler(cfg.AuthService, cfg.MatchController)
	playHandler := handler.NewPlayHandler(cfg.MatchController)

	// Static files
	if cfg.StaticDir != "" {
		staticHandler := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
		r.PathPrefix("/static/").Handler(staticHandler)
	}

	// Auth pages and actions (no auth required, optional auth for redirects)
	public := r.NewRoute().Subrouter()
	public.Use(flashMiddleware)
	public.Use(optionalAuthMiddleware)
	public.HandleFunc("/login", authHandler.LoginPage).Methods(http.MethodGet)
	public.HandleFunc("/register", authHandler.RegisterPage).Methods(http.MethodGet)
	public.HandleFunc("/auth/guest", authHandler.CreateGuest).Methods(http.MethodPost)
	public.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	public.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	public.HandleFunc("/auth/logout", authHandler.Logout).Methods(http.MethodPost)

	// Game routes (require auth)
	protected := r.NewRoute().Subrouter()
	protected.Use(flashMiddleware)
	protected.Use(authMiddleware)
	protected.HandleFunc("/", playHandler.Play).Methods(http.MethodGet)
	protected.HandleFunc("/play", playHandler.Submit).Methods(http.MethodPost)

	return r
}
