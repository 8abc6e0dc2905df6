package roster

import (
	"context"
	"errors"
	"log/slog"

	"github.com/teamlineup/lineup/internal/dependencies/clock"
	"github.com/teamlineup/lineup/internal/model"
	"github.com/teamlineup/lineup/internal/services/photos"
	"github.com/teamlineup/lineup/internal/storage"
)

// Service manages the player roster
type Service struct {
	storage storage.Storage
	photos  *photos.Service
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new roster Service
func New(storage storage.Storage, photos *photos.Service, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		photos:  photos,
		clock:   clock,
		logger:  logger,
	}
}

// List returns all players in insertion order
func (s *Service) List(ctx context.Context) ([]*model.Player, error) {
	return s.storage.ListPlayers(ctx)
}

// Get returns a single player by id
func (s *Service) Get(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	return s.storage.GetPlayer(ctx, id)
}

// Add creates a new player referencing an already-stored photo.
// Returns a model.ValidationError naming the first empty field.
func (s *Service) Add(ctx context.Context, name, number, photoKey string) (*model.Player, error) {
	switch {
	case name == "":
		return nil, model.NewValidationError("name")
	case number == "":
		return nil, model.NewValidationError("number")
	case photoKey == "":
		return nil, model.NewValidationError("photo")
	}

	player := &model.Player{
		Name:      name,
		Number:    number,
		PhotoKey:  photoKey,
		CreatedAt: s.clock.Now(),
	}

	if err := s.storage.CreatePlayer(ctx, player); err != nil {
		return nil, err
	}

	s.logger.Info("player added",
		slog.Int64("id", int64(player.ID)),
		slog.String("name", player.Name),
	)
	return player, nil
}

// Delete removes a player and, best-effort, its photo file.
// The row must exist before any file is touched; once the row is gone a
// failed file removal is logged but does not fail the delete.
func (s *Service) Delete(ctx context.Context, id model.PlayerID) error {
	player, err := s.storage.GetPlayer(ctx, id)
	if err != nil {
		return err
	}

	if err := s.storage.DeletePlayer(ctx, id); err != nil {
		return err
	}

	if err := s.photos.Remove(player.PhotoKey); err != nil && !errors.Is(err, model.ErrPhotoNotFound) {
		s.logger.Warn("failed to remove photo for deleted player",
			slog.Int64("id", int64(id)),
			slog.String("photo", player.PhotoKey),
			slog.String("error", err.Error()),
		)
	}

	s.logger.Info("player deleted", slog.Int64("id", int64(id)))
	return nil
}
