package session

import (
	"sync"
	"time"

	"github.com/vancomm/minesweeper-engine/internal/mines"
)

/*
Session is one hosted game. The engine does no locking of its own, so
every call into the game goes through the session mutex.
*/
type Session struct {
	ID        string
	StartedAt time.Time

	mu      sync.Mutex
	game    *mines.Game
	endedAt *time.Time
	lastHit int /* index of the bomb that ended the game, -1 if none */
	touched time.Time
}

func newSession(id string, game *mines.Game, now time.Time) *Session {
	return &Session{
		ID:        id,
		StartedAt: now,
		game:      game,
		lastHit:   -1,
		touched:   now,
	}
}

// View is the session metadata that sits next to the board.
type View struct {
	StartedAt time.Time
	EndedAt   *time.Time
	LastHit   int
}

func (s *Session) Click(x, y int) (hitBomb, changed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	s.touched = now

	hitBomb, changed = s.game.Click(x, y)
	if hitBomb {
		s.lastHit = y*s.game.Width() + x
	}
	if changed && s.endedAt == nil && (s.game.IsGameOver() || s.game.Won()) {
		s.endedAt = &now
	}
	return
}

func (s *Session) Reset(params mines.GameParams, seed mines.Seed) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	s.game.NewGame(params, seed)
	s.StartedAt = now
	s.endedAt = nil
	s.lastHit = -1
	s.touched = now
}

// Read calls fn with the game locked. fn must not keep the game.
func (s *Session) Read(fn func(g *mines.Game, v View)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.touched = time.Now()
	fn(s.game, View{
		StartedAt: s.StartedAt,
		EndedAt:   s.endedAt,
		LastHit:   s.lastHit,
	})
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.touched
}
