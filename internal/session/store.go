package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/vancomm/minesweeper-engine/internal/mines"
)

var (
	ErrNotFound        = errors.New("game session not found")
	ErrTooManySessions = errors.New("too many active game sessions")
)

// Store keeps sessions in memory; they are lost on restart.
type Store struct {
	logger   *slog.Logger
	ttl      time.Duration
	max      int
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore(logger *slog.Logger, ttl time.Duration, max int) *Store {
	return &Store{
		logger:   logger,
		ttl:      ttl,
		max:      max,
		sessions: make(map[string]*Session),
	}
}

func newID() string {
	var b [12]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}

func (st *Store) Create(params mines.GameParams, seed mines.Seed) (*Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if len(st.sessions) >= st.max {
		return nil, ErrTooManySessions
	}

	id := newID()
	for _, taken := st.sessions[id]; taken; _, taken = st.sessions[id] {
		id = newID()
	}

	s := newSession(id, mines.New(params, seed), time.Now())
	st.sessions[id] = s
	return s, nil
}

func (st *Store) Get(id string) (*Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	s, ok := st.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

func (st *Store) Delete(id string) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	if _, ok := st.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(st.sessions, id)
	return nil
}

func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Sweep drops every session idle for longer than the store TTL and
// returns how many were dropped.
func (st *Store) Sweep(now time.Time) int {
	st.mu.Lock()
	defer st.mu.Unlock()

	n := 0
	for id, s := range st.sessions {
		if now.Sub(s.idleSince()) > st.ttl {
			delete(st.sessions, id)
			n++
		}
	}
	return n
}

// Run sweeps expired sessions every interval until ctx is done.
func (st *Store) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			if n := st.Sweep(now); n > 0 {
				st.logger.Info(
					"expired game sessions",
					slog.Int("count", n),
					slog.Int("remaining", st.Len()),
				)
			}
		}
	}
}
