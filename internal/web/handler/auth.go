package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/teamlineup/lineup/internal/model"
	"github.com/teamlineup/lineup/internal/services/auth"
	"github.com/teamlineup/lineup/internal/web/middleware"
	"github.com/teamlineup/lineup/internal/web/templates/layout"
	"github.com/teamlineup/lineup/internal/web/templates/pages"
)

// AuthHandler handles authentication pages and actions
type AuthHandler struct {
	authService *auth.Service
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *auth.Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// LoginPage renders the login page
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	if user != nil {
		// Already logged in, redirect to the lineup
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	flash := middleware.GetFlash(r.Context())
	next := r.URL.Query().Get("next")

	data := pages.LoginData{
		PageData: layout.PageData{
			Title: "Log in",
			Flash: flash,
		},
		Next: next,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.Login(data).Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// Login handles login form submission
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderLoginError(w, r, "Invalid form data", "", "")
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")
	next := r.FormValue("next")

	if username == "" || password == "" {
		h.renderLoginError(w, r, "Username and password are required", username, next)
		return
	}

	session, err := h.authService.Login(r.Context(), username, password)
	if err != nil {
		h.renderLoginError(w, r, "Invalid username or password", username, next)
		return
	}

	h.setSessionCookie(w, session.Token, session.ExpiresAt)
	middleware.SetFlash(w, "success", "Welcome back, "+session.Username+"!")

	// Redirect to original destination or the lineup
	if next != "" && strings.HasPrefix(next, "/") {
		http.Redirect(w, r, next, http.StatusSeeOther)
	} else {
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// RegisterPage renders the registration page
func (h *AuthHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	if user != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	flash := middleware.GetFlash(r.Context())

	data := pages.RegisterData{
		PageData: layout.PageData{
			Title: "Register",
			Flash: flash,
		},
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.Register(data).Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// Register handles registration form submission. A new account does not
// log the user in; they are sent to the login page to sign in themselves.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderRegisterError(w, r, "Invalid form data", "")
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")

	if username == "" || password == "" {
		h.renderRegisterError(w, r, "Username and password are required", username)
		return
	}

	if _, err := h.authService.Register(r.Context(), username, password); err != nil {
		if errors.Is(err, model.ErrUsernameExists) {
			h.renderRegisterError(w, r, "Username already taken", username)
		} else {
			h.renderRegisterError(w, r, "Registration failed", username)
		}
		return
	}

	middleware.SetFlash(w, "success", "Account created, please log in")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// Logout invalidates the session and clears the cookie
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.SessionCookieName); err == nil {
		// Best effort; an already-gone session is fine
		_ = h.authService.Logout(r.Context(), cookie.Value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
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

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string, expires time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) renderLoginError(w http.ResponseWriter, r *http.Request, errorMsg, username, next string) {
	data := pages.LoginData{
		PageData: layout.PageData{
			Title: "Log in",
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

func (h *AuthHandler) renderRegisterError(w http.ResponseWriter, r *http.Request, errorMsg, username string) {
	data := pages.RegisterData{
		PageData: layout.PageData{
			Title: "Register",
		},
		Username: username,
		Error:    errorMsg,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.Register(data).Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
