package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/fairhand/fairhand/internal/services/auth"
	"github.com/fairhand/fairhand/internal/services/match"
	"github.com/fairhand/fairhand/internal/web/layout"
	"github.com/fairhand/fairhand/internal/web/middleware"
	"github.com/fairhand/fairhand/internal/web/pages"
)

// AuthHandler handles authentication pages and actions
type AuthHandler struct {
	authService     *auth.Service
	matchController *match.Controller
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *auth.Service, matchController *match.Controller) *AuthHandler {
	return &AuthHandler{
		authService:     authService,
		matchController: matchController,
	}
}

// LoginPage renders the login page
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	player := middleware.GetPlayer(r.Context())
	if player != nil {
		// Already logged in, go play
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	flash := middleware.GetFlash(r.Context())
	next := r.URL.Query().Get("next")

	data := pages.LoginData{
		PageData: layout.PageData{
			Title: "Login",
			Flash: flash,
		},
		Next: next,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.Login(data).Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// RegisterPage renders the registration page
func (h *AuthHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	player := middleware.GetPlayer(r.Context())
	if player != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	flash := middleware.GetFlash(r.Context())

	data := pages.RegisterData{
		PageData: layout.PageData{
			Title: "Register",
			Flash: flash,
		},
		FieldErrors: make(map[string]string),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.Register(data).Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// CreateGuest handles guest player creation
func (h *AuthHandler) CreateGuest(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderLoginError(w, r, "Invalid form data")
		return
	}

	displayName := strings.TrimSpace(r.FormValue("display_name"))
	next := r.FormValue("next")

	if displayName == "" {
		middleware.SetFlash(w, "error", "A name is required")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if len(displayName) > 20 {
		displayName = displayName[:20]
	}

	session, err := h.authService.CreateGuestPlayer(r.Context(), displayName)
	if err != nil {
		middleware.SetFlash(w, "error", "Failed to create guest player")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	h.startSession(w, r, session, next)
}

// Login handles login form submission
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderLoginError(w, r, "Invalid form data")
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")
	next := r.FormValue("next")

	if username == "" || password == "" {
		h.renderLoginErrorWithData(w, r, "Username and password are required", username, next)
		return
	}

	session, err := h.authService.Login(r.Context(), username, password)
	if err != nil {
		h.renderLoginErrorWithData(w, r, "Invalid username or password", username, next)
		return
	}

	h.startSession(w, r, session, next)
}

// Register handles registration form submission
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderRegisterError(w, r, "Invalid form data", "", "", nil)
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	displayName := strings.TrimSpace(r.FormValue("display_name"))
	password := r.FormValue("password")
	passwordConfirm := r.FormValue("password_confirm")

	fieldErrors := make(map[string]string)

	if username == "" {
		fieldErrors["username"] = "Username is required"
	} else if len(username) < 3 {
		fieldErrors["username"] = "Username must be at least 3 characters"
	} else if len(username) > 20 {
		fieldErrors["username"] = "Username must be at most 20 characters"
	}

	if displayName == "" {
		fieldErrors["display_name"] = "Display name is required"
	} else if len(displayName) > 20 {
		fieldErrors["display_name"] = "Display name must be at most 20 characters"
	}

	if password == "" {
		fieldErrors["password"] = "Password is required"
	} else if len(password) < 8 {
		fieldErrors["password"] = "Password must be at least 8 characters"
	}

	if password != passwordConfirm {
		fieldErrors["password_confirm"] = "Passwords do not match"
	}

	if len(fieldErrors) > 0 {
		h.renderRegisterError(w, r, "", username, displayName, fieldErrors)
		return
	}

	session, err := h.authService.RegisterPlayer(r.Context(), username, password, displayName)
	if err != nil {
		if strings.Contains(err.Error(), "already exists") {
			fieldErrors["username"] = "Username already taken"
			h.renderRegisterError(w, r, "", username, displayName, fieldErrors)
		} else {
			h.renderRegisterError(w, r, "Registration failed", username, displayName, nil)
		}
		return
	}

	h.startSession(w, r, session, "")
}

// Logout handles logout: the match ends with the session
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie("session"); err == nil {
		if player, err := h.authService.GetPlayer(cookie.Value); err == nil {
			_ = h.matchController.EndMatch(r.Context(), player.ID)
		}
		h.authService.InvalidateSession(cookie.Value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "session",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	middleware.SetFlash(w, "info", "You have been logged out")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// startSession begins a fresh match for the player, sets the session cookie,
// and redirects to the game
func (h *AuthHandler) startSession(w http.ResponseWriter, r *http.Request, session *auth.Session, next string) {
	if _, err := h.matchController.StartMatch(r.Context(), session.Player.ID, session.Player.DisplayName); err != nil {
		middleware.SetFlash(w, "error", "Failed to start a match")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "session",
		Value:    session.Token,
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	middleware.SetFlash(w, "success", "Welcome, "+session.Player.DisplayName+"!")

	if next != "" && strings.HasPrefix(next, "/") {
		http.Redirect(w, r, next, http.StatusSeeOther)
	} else {
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func (h *AuthHandler) renderLoginError(w http.ResponseWriter, r *http.Request, errorMsg string) {
	h.renderLoginErrorWithData(w, r, errorMsg, "", "")
}

func (h *AuthHandler) renderLoginErrorWithData(w http.ResponseWriter, r *http.Request, errorMsg, username, next string) {
	data := pages.LoginData{
		PageData: layout.PageData{
			Title: "Login",
		},
		Username: username,
		Error:    errorMsg,
		Next:     next,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.Login(data).Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func (h *AuthHandler) renderRegisterError(w http.ResponseWriter, r *http.Request, errorMsg, username, displayName string, fieldErrors map[string]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string]string)
	}

	data := pages.RegisterData{
		PageData: layout.PageData{
			Title: "Register",
		},
		Username:    username,
		DisplayName: displayName,
		Error:       errorMsg,
		FieldErrors: fieldErrors,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.Register(data).Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
