package services

import (
	"context"
	"sync"
	"time"

	"github.com/Sumantkumarraj20/KLD/internal/clock"
	"github.com/Sumantkumarraj20/KLD/internal/game"
	"github.com/Sumantkumarraj20/KLD/internal/logger"
)

// SessionStore keeps in-progress sessions in memory. Sessions are
// short-lived play state, not durable data; restarting the server
// simply means a level gets replayed. A kid has at most one active
// session, starting a new level abandons the previous one.
type SessionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	clk      clock.Clock
	sessions map[string]*storedSession
	byKid    map[string]string
	log      *logger.Logger
}

type storedSession struct {
	session   *game.Session
	touchedAt time.Time
}

func NewSessionStore(ttl time.Duration, clk clock.Clock) *SessionStore {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &SessionStore{
		ttl:      ttl,
		clk:      clk,
		sessions: make(map[string]*storedSession),
		byKid:    make(map[string]string),
		log:      logger.Default().WithPrefix("session-store"),
	}
}

// Put registers a session, replacing any active session for the same
// kid.
func (st *SessionStore) Put(s *game.Session) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if oldID, ok := st.byKid[s.KidID]; ok && oldID != s.SessionID {
		st.log.Debug("abandoning previous session %s for kid %s", oldID, s.KidID)
		delete(st.sessions, oldID)
	}
	st.sessions[s.SessionID] = &storedSession{session: s, touchedAt: st.clk.Now()}
	st.byKid[s.KidID] = s.SessionID
}

// Do runs fn against the stored session while holding the store lock,
// so answer recording and completion are serialized per process.
func (st *SessionStore) Do(sessionID string, fn func(*game.Session) error) (bool, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	entry, ok := st.sessions[sessionID]
	if !ok {
		return false, nil
	}
	now := st.clk.Now()
	if now.Sub(entry.touchedAt) > st.ttl {
		st.evictLocked(sessionID, entry)
		return false, nil
	}
	entry.touchedAt = now
	return true, fn(entry.session)
}

// Remove drops a session once it has been completed and persisted.
func (st *SessionStore) Remove(sessionID string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if entry, ok := st.sessions[sessionID]; ok {
		st.evictLocked(sessionID, entry)
	}
}

// Sweep evicts every session idle for longer than the TTL and returns
// how many were dropped.
func (st *SessionStore) Sweep() int {
	st.mu.Lock()
	defer st.mu.Unlock()

	now := st.clk.Now()
	evicted := 0
	for id, entry := range st.sessions {
		if now.Sub(entry.touchedAt) > st.ttl {
			st.evictLocked(id, entry)
			evicted++
		}
	}
	if evicted > 0 {
		st.log.Info("swept %d expired sessions", evicted)
	}
	return evicted
}

// StartJanitor sweeps periodically until the context is cancelled.
func (st *SessionStore) StartJanitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				st.Sweep()
			}
		}
	}()
}

// Len returns the number of stored sessions.
func (st *SessionStore) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

func (st *SessionStore) evictLocked(sessionID string, entry *storedSession) {
	delete(st.sessions, sessionID)
	if st.byKid[entry.session.KidID] == sessionID {
		delete(st.byKid, entry.session.KidID)
	}
}
