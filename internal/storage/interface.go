package storage

import (
	"context"

	"github.com/teamlineup/lineup/internal/model"
)

// Storage defines the interface for data persistence
//
// CreateUser must enforce username uniqueness itself and return
// model.ErrUsernameExists on a duplicate, even when a concurrent request
// inserted the same username after a lookup saw it free.
type Storage interface {
	// User operations
	CreateUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, id model.UserID) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)

	// Player operations
	CreatePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	ListPlayers(ctx context.Context) ([]*model.Player, error)
	DeletePlayer(ctx context.Context, id model.PlayerID) error
}
