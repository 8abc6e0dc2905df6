package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/teamlineup/lineup/internal/dependencies/clock"
	"github.com/teamlineup/lineup/internal/dependencies/random"
	"github.com/teamlineup/lineup/internal/services/auth"
	"github.com/teamlineup/lineup/internal/services/photos"
	"github.com/teamlineup/lineup/internal/services/roster"
	"github.com/teamlineup/lineup/internal/sessions"
	sessionmemory "github.com/teamlineup/lineup/internal/sessions/memory"
	sessionredis "github.com/teamlineup/lineup/internal/sessions/redis"
	"github.com/teamlineup/lineup/internal/storage"
	"github.com/teamlineup/lineup/internal/storage/memory"
	"github.com/teamlineup/lineup/internal/storage/sqlite"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeSQLite = "sqlite"
)

// Session store type constants
const (
	SessionStoreTypeMemory = "memory"
	SessionStoreTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage  storage.Storage
	Sessions sessions.Store

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	AuthService   *auth.Service
	RosterService *roster.Service
	PhotosService *photos.Service

	closers []io.Closer
}

// Config holds configuration for the application factory
type Config struct {
	// StorageType selects the storage backend ("memory" or "sqlite")
	// If empty, defaults to "memory"
	StorageType string
	// SQLitePath is the database file path (required if StorageType is "sqlite")
	SQLitePath string
	// SessionStoreType selects the session backend ("memory" or "redis")
	// If empty, defaults to "memory"
	SessionStoreType string
	// RedisConfig holds Redis connection settings (required if SessionStoreType is "redis")
	RedisConfig *sessionredis.Config
	// UploadDir is the directory photos are stored in
	// If empty, defaults to "uploads"
	UploadDir string
	// AuthConfig holds configuration for the auth service (optional)
	// If zero value, defaults to auth.DefaultConfig()
	AuthConfig auth.Config
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

	var closers []io.Closer

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeSQLite:
		if cfg.SQLitePath == "" {
			return nil, errors.New("SQLitePath required when StorageType is sqlite")
		}
		sqliteStore, err := sqlite.New(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		store = sqliteStore
		closers = append(closers, sqliteStore)
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'sqlite'")
	}

	// Create session store based on type
	var sessionStore sessions.Store
	sessionStoreType := cfg.SessionStoreType
	if sessionStoreType == "" {
		sessionStoreType = SessionStoreTypeMemory
	}

	switch sessionStoreType {
	case SessionStoreTypeMemory:
		sessionStore = sessionmemory.New()
	case SessionStoreTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when SessionStoreType is redis")
		}
		redisStore, err := sessionredis.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		sessionStore = redisStore
		closers = append(closers, redisStore)
	default:
		return nil, errors.New("invalid SessionStoreType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	uploadDir := cfg.UploadDir
	if uploadDir == "" {
		uploadDir = "uploads"
	}

	// Use default auth config if not provided
	authCfg := cfg.AuthConfig
	if authCfg.SessionDuration == 0 {
		authCfg = auth.DefaultConfig()
	}

	app, err := newWithDependencies(store, sessionStore, clk, rnd, uploadDir, authCfg, logger)
	if err != nil {
		return nil, err
	}
	app.closers = closers
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	sessionStore sessions.Store,
	clk clock.Clock,
	rnd random.Random,
	uploadDir string,
	authCfg auth.Config,
	logger *slog.Logger,
) (*App, error) {
	photosService, err := photos.New(photos.Config{Dir: uploadDir}, rnd, logger)
	if err != nil {
		return nil, err
	}

	authService := auth.New(store, sessionStore, clk, authCfg, logger)
	rosterService := roster.New(store, photosService, clk, logger)

	return &App{
		Storage:       store,
		Sessions:      sessionStore,
		Clock:         clk,
		Random:        rnd,
		AuthService:   authService,
		RosterService: rosterService,
		PhotosService: photosService,
	}, nil
}

// Close releases backing resources (database handles, connection pools)
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
