package model

import "time"

// PlayerID uniquely identifies a roster entry
type PlayerID int64

// Player is a single roster entry
type Player struct {
	ID        PlayerID
	Name      string
	Number    string // jersey number, kept as text
	PhotoKey  string // key of the stored photo file
	CreatedAt time.Time
}
