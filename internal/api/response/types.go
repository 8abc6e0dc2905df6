package response

import (
	"time"

	"github.com/teamlineup/lineup/internal/model"
	"github.com/teamlineup/lineup/internal/sessions"
)

// User represents a user in API responses
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// UserFromModel converts a model.User to a response User
func UserFromModel(u *model.User) User {
	return User{
		ID:       int64(u.ID),
		Username: u.Username,
	}
}

// AuthResponse is the response for the login endpoint
type AuthResponse struct {
	UserID       int64     `json:"user_id"`
	Username     string    `json:"username"`
	SessionToken string    `json:"session_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *sessions.Session) AuthResponse {
	return AuthResponse{
		UserID:       int64(s.UserID),
		Username:     s.Username,
		SessionToken: s.Token,
		ExpiresAt:    s.ExpiresAt,
	}
}

// Player represents a roster entry in API responses
type Player struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Number    string    `json:"number"`
	PhotoKey  string    `json:"photo_key"`
	CreatedAt time.Time `json:"created_at"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:        int64(p.ID),
		Name:      p.Name,
		Number:    p.Number,
		PhotoKey:  p.PhotoKey,
		CreatedAt: p.CreatedAt,
	}
}

// PlayerList is the response for the roster listing endpoint
type PlayerList struct {
	Players []Player `json:"players"`
}

// PlayerListFromModel converts a slice of model players
func PlayerListFromModel(players []*model.Player) PlayerList {
	out := PlayerList{Players: make([]Player, len(players))}
	for i, p := range players {
		out.Players[i] = PlayerFromModel(p)
	}
	return out
}
