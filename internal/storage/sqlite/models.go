package sqlite

import (
	"time"

	"github.com/teamlineup/lineup/internal/model"
)

// userRecord is the gorm mapping for the users table
type userRecord struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	CreatedAt    time.Time
}

func (userRecord) TableName() string { return "users" }

func (r *userRecord) toModel() *model.User {
	return &model.User{
		ID:           model.UserID(r.ID),
		Username:     r.Username,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt,
	}
}

func userRecordFromModel(u *model.User) *userRecord {
	return &userRecord{
		ID:           int64(u.ID),
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
	}
}

// playerRecord is the gorm mapping for the players table
type playerRecord struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"not null"`
	Number    string `gorm:"not null"`
	PhotoKey  string `gorm:"not null"`
	CreatedAt time.Time
}

func (playerRecord) TableName() string { return "players" }

func (r *playerRecord) toModel() *model.Player {
	return &model.Player{
		ID:        model.PlayerID(r.ID),
		Name:      r.Name,
		Number:    r.Number,
		PhotoKey:  r.PhotoKey,
		CreatedAt: r.CreatedAt,
	}
}

func playerRecordFromModel(p *model.Player) *playerRecord {
	return &playerRecord{
		ID:        int64(p.ID),
		Name:      p.Name,
		Number:    p.Number,
		PhotoKey:  p.PhotoKey,
		CreatedAt: p.CreatedAt,
	}
}
