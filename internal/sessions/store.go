package sessions

import (
	"context"
	"errors"
	"time"

	"github.com/teamlineup/lineup/internal/model"
)

// ErrSessionNotFound is returned when a token has no stored session
var ErrSessionNotFound = errors.New("session not found")

// Session is the server-side record of an authenticated browser session
type Session struct {
	Token     string       `json:"token"`
	UserID    model.UserID `json:"user_id"`
	Username  string       `json:"username"`
	CreatedAt time.Time    `json:"created_at"`
	ExpiresAt time.Time    `json:"expires_at"`
}

// Store persists sessions between requests
type Store interface {
	Save(ctx context.Context, session *Session) error
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
}
