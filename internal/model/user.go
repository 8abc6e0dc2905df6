package model

import "time"

// UserID uniquely identifies a registered user
type UserID int64

// User is a registered account that can manage the roster
// Users are never updated or deleted once created
type User struct {
	ID           UserID
	Username     string // unique login name
	PasswordHash string // bcrypt hash, never the plaintext
	CreatedAt    time.Time
}
