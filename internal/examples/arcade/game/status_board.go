package game

import (
	"sync"
	"time"

	"github.com/victormf2/gameioc/events"
	"github.com/victormf2/gameioc/state"
)

type Status struct {
	SessionID string `json:"session_id"`
	Player    string `json:"player"`
	State     string `json:"state"`
	Frame     int64  `json:"frame"`
	Points    int    `json:"points"`
	Spawned   int    `json:"spawned"`
}

// StatusBoard mirrors the game for readers outside the update loop, like the debug server.
// Only its snapshot is shared, so it is the one type here guarded by a mutex.
type StatusBoard struct {
	mu     sync.RWMutex
	status Status
}

func NewStatusBoard(queue *events.Queue, session *Session) *StatusBoard {
	b := &StatusBoard{
		status: Status{
			SessionID: session.ID,
			Player:    session.Player,
			State:     state.Initializing.String(),
		},
	}
	events.Subscribe(queue, func(e state.StateChanged) {
		b.mutate(func(s *Status) { s.State = e.To.String() })
	})
	events.Subscribe(queue, func(e EnemySpawned) {
		b.mutate(func(s *Status) { s.Spawned++ })
	})
	events.Subscribe(queue, func(e EnemyDefeated) {
		b.mutate(func(s *Status) { s.Points += e.Points })
	})
	return b
}

func (b *StatusBoard) Update(time.Duration) error {
	b.mutate(func(s *Status) { s.Frame++ })
	return nil
}

func (b *StatusBoard) Snapshot() Status {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.status
}

func (b *StatusBoard) mutate(fn func(s *Status)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	fn(&b.status)
}
