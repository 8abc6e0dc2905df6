package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/teamlineup/lineup/internal/api/handler"
	"github.com/teamlineup/lineup/internal/api/middleware"
	"github.com/teamlineup/lineup/internal/services/auth"
	"github.com/teamlineup/lineup/internal/services/photos"
	"github.com/teamlineup/lineup/internal/services/roster"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger        *slog.Logger
	AuthService   *auth.Service
	RosterService *roster.Service
	PhotosService *photos.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	userHandler := handler.NewUserHandler(cfg.AuthService)
	rosterHandler := handler.NewRosterHandler(cfg.RosterService, cfg.PhotosService, cfg.Logger)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.AuthService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// User routes (no auth required for registering/logging in)
	api.HandleFunc("/users/register", userHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/users/login", userHandler.Login).Methods(http.MethodPost)

	// Protected user routes
	userProtected := api.PathPrefix("/users").Subrouter()
	userProtected.Use(authMiddleware)
	userProtected.HandleFunc("/me", userHandler.GetMe).Methods(http.MethodGet)
	userProtected.HandleFunc("/logout", userHandler.Logout).Methods(http.MethodPost)

	// Roster routes (all require auth)
	players := api.PathPrefix("/players").Subrouter()
	players.Use(authMiddleware)
	players.HandleFunc("", rosterHandler.List).Methods(http.MethodGet)
	players.HandleFunc("", rosterHandler.Add).Methods(http.MethodPost)
	players.HandleFunc("/{id}", rosterHandler.Get).Methods(http.MethodGet)
	players.HandleFunc("/{id}", rosterHandler.Delete).Methods(http.MethodDelete)

	// Photo routes (require auth)
	photoRoutes := api.PathPrefix("/photos").Subrouter()
	photoRoutes.Use(authMiddleware)
	photoRoutes.HandleFunc("/{key}", rosterHandler.ServePhoto).Methods(http.MethodGet)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
