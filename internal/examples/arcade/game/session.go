package game

import (
	"time"

	"github.com/google/uuid"
)

// Session identifies one run of the game.
type Session struct {
	ID        string
	Player    string
	StartedAt time.Time
}

func NewSession(player string) *Session {
	return &Session{
		ID:        uuid.NewString(),
		Player:    player,
		StartedAt: time.Now(),
	}
}
