package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/teamlineup/lineup/internal/services/auth"
	"github.com/teamlineup/lineup/internal/services/photos"
	"github.com/teamlineup/lineup/internal/services/roster"
	"github.com/teamlineup/lineup/internal/web/handler"
	"github.com/teamlineup/lineup/internal/web/middleware"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger        *slog.Logger
	AuthService   *auth.Service
	RosterService *roster.Service
	PhotosService *photos.Service
	StaticDir     string // Path to static files directory
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)
	flashMiddleware := middleware.Flash()
	authMiddleware := middleware.Auth(cfg.AuthService)
	optionalAuthMiddleware := middleware.OptionalAuth(cfg.AuthService)

	// Apply global middleware to all routes
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	// Create handlers
	authHandler := handler.NewAuthHandler(cfg.AuthService)
	rosterHandler := handler.NewRosterHandler(cfg.RosterService, cfg.PhotosService, cfg.Logger)
	uploadsHandler := handler.NewUploadsHandler(cfg.PhotosService, cfg.Logger)

	// Static files
	if cfg.StaticDir != "" {
		staticHandler := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
		r.PathPrefix("/static/").Handler(staticHandler)
	}

	// Public routes (optional auth so a logged-in visitor is bounced home)
	public := r.NewRoute().Subrouter()
	public.Use(flashMiddleware)
	public.Use(optionalAuthMiddleware)
	public.HandleFunc("/login", authHandler.LoginPage).Methods(http.MethodGet)
	public.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)
	public.HandleFunc("/register", authHandler.RegisterPage).Methods(http.MethodGet)
	public.HandleFunc("/register", authHandler.Register).Methods(http.MethodPost)
	public.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodGet)

	// Protected routes (require auth)
	protected := r.NewRoute().Subrouter()
	protected.Use(flashMiddleware)
	protected.Use(authMiddleware)
	protected.HandleFunc("/", rosterHandler.Lineup).Methods(http.MethodGet)
	protected.HandleFunc("/lineup", rosterHandler.Lineup).Methods(http.MethodGet)
	protected.HandleFunc("/add_player", rosterHandler.AddPlayerPage).Methods(http.MethodGet)
	protected.HandleFunc("/add_player", rosterHandler.AddPlayer).Methods(http.MethodPost)
	protected.HandleFunc("/delete_player/{id}", rosterHandler.Delete).Methods(http.MethodPost)
	protected.HandleFunc("/uploads/{filename}", uploadsHandler.Serve).Methods(http.MethodGet)

	return r
}
