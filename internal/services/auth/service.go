package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/teamlineup/lineup/internal/dependencies/clock"
	"github.com/teamlineup/lineup/internal/model"
	"github.com/teamlineup/lineup/internal/sessions"
	"github.com/teamlineup/lineup/internal/storage"
)

// Errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSession     = errors.New("invalid or expired session")
)

// Service handles registration, authentication and session management
type Service struct {
	storage  storage.Storage
	store    sessions.Store
	clock    clock.Clock
	logger   *slog.Logger
	duration time.Duration
}

// Config holds configuration for the auth service
type Config struct {
	SessionDuration time.Duration
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{
		SessionDuration: 24 * time.Hour,
	}
}

// New creates a new auth Service
func New(storage storage.Storage, store sessions.Store, clock clock.Clock, cfg Config, logger *slog.Logger) *Service {
	if cfg.SessionDuration == 0 {
		cfg.SessionDuration = DefaultConfig().SessionDuration
	}
	return &Service{
		storage:  storage,
		store:    store,
		clock:    clock,
		logger:   logger,
		duration: cfg.SessionDuration,
	}
}

// Register creates a new user account. It does not log the user in; the
// caller sends them to the login form, matching the registration flow.
// Returns model.ErrUsernameExists when the username is taken, including when
// a concurrent registration wins the race: the storage layer's uniqueness
// guarantee is the source of truth, not a prior lookup.
func (s *Service) Register(ctx context.Context, username, password string) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    s.clock.Now(),
	}

	if err := s.storage.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", slog.String("username", username))
	return user, nil
}

// Login authenticates a user and creates a session.
// An unknown username and a wrong password both yield ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, username, password string) (*sessions.Session, error) {
	user, err := s.storage.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.createSession(ctx, user)
}

// ValidateSession checks that a token refers to a live session
func (s *Service) ValidateSession(ctx context.Context, token string) (*sessions.Session, error) {
	session, err := s.store.Get(ctx, token)
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, err
	}

	if s.clock.Now().After(session.ExpiresAt) {
		_ = s.store.Delete(ctx, token)
		return nil, ErrInvalidSession
	}

	return session, nil
}

// CurrentUser resolves a session token to its user, re-fetching the user
// record so any change to the account is reflected immediately
func (s *Service) CurrentUser(ctx context.Context, token string) (*model.User, error) {
	session, err := s.ValidateSession(ctx, token)
	if err != nil {
		return nil, err
	}

	user, err := s.storage.GetUser(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, err
	}
	return user, nil
}

// Logout invalidates a session. Unknown tokens are not an error.
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.store.Delete(ctx, token)
}

// createSession creates and persists a new session for a user
func (s *Service) createSession(ctx context.Context, user *model.User) (*sessions.Session, error) {
	now := s.clock.Now()
	session := &sessions.Session{
		Token:     generateToken(),
		UserID:    user.ID,
		Username:  user.Username,
		CreatedAt: now,
		ExpiresAt: now.Add(s.duration),
	}

	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// generateToken generates an opaque session token
func generateToken() string {
	b := make([]byte, 24)
	_, _ = rand.Read(b)
	return "sess_" + base64.RawURLEncoding.EncodeToString(b)
}
