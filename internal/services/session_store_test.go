package services_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumantkumarraj20/KLD/internal/game"
	"github.com/Sumantkumarraj20/KLD/internal/models"
	"github.com/Sumantkumarraj20/KLD/internal/services"
)

// fakeClock is a mutable clock for TTL tests.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func newTestSession(t *testing.T, kidID string) *game.Session {
	t.Helper()
	level := models.Level{
		LevelID:     models.LevelID(models.DomainMathematics, 1),
		Domain:      models.DomainMathematics,
		LevelNumber: 1,
	}
	questions := []models.Question{
		models.MathQuestion{
			BaseQuestion: models.BaseQuestion{QuestionID: "q1", TimeLimitSeconds: 30},
			Operation:    models.OpAddition,
			Num1:         1, Num2: 2, Result: 3,
		},
	}
	s, err := game.NewSession(kidID, level, questions, time.Now())
	require.NoError(t, err)
	return s
}

func TestSessionStore_PutAndDo(t *testing.T) {
	clk := &fakeClock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	store := services.NewSessionStore(time.Hour, clk)

	session := newTestSession(t, "kid-1")
	store.Put(session)
	assert.Equal(t, 1, store.Len())

	found, err := store.Do(session.SessionID, func(s *game.Session) error {
		assert.Equal(t, "kid-1", s.KidID)
		return nil
	})
	require.NoError(t, err)
	assert.True(t, found)

	found, _ = store.Do("missing", func(*game.Session) error { return nil })
	assert.False(t, found)
}

func TestSessionStore_OneSessionPerKid(t *testing.T) {
	clk := &fakeClock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	store := services.NewSessionStore(time.Hour, clk)

	first := newTestSession(t, "kid-1")
	second := newTestSession(t, "kid-1")
	store.Put(first)
	store.Put(second)

	assert.Equal(t, 1, store.Len())
	found, _ := store.Do(first.SessionID, func(*game.Session) error { return nil })
	assert.False(t, found, "abandoned session must be gone")
	found, _ = store.Do(second.SessionID, func(*game.Session) error { return nil })
	assert.True(t, found)
}

func TestSessionStore_TTLExpiry(t *testing.T) {
	clk := &fakeClock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	store := services.NewSessionStore(30*time.Minute, clk)

	session := newTestSession(t, "kid-1")
	store.Put(session)

	clk.Advance(29 * time.Minute)
	found, _ := store.Do(session.SessionID, func(*game.Session) error { return nil })
	assert.True(t, found)

	// The Do above refreshed the idle timer; expire it for real now.
	clk.Advance(31 * time.Minute)
	found, _ = store.Do(session.SessionID, func(*game.Session) error { return nil })
	assert.False(t, found)
	assert.Equal(t, 0, store.Len())
}

func TestSessionStore_Sweep(t *testing.T) {
	clk := &fakeClock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	store := services.NewSessionStore(10*time.Minute, clk)

	store.Put(newTestSession(t, "kid-1"))
	store.Put(newTestSession(t, "kid-2"))
	assert.Equal(t, 0, store.Sweep())

	clk.Advance(11 * time.Minute)
	fresh := newTestSession(t, "kid-3")
	store.Put(fresh)

	assert.Equal(t, 2, store.Sweep())
	assert.Equal(t, 1, store.Len())
}

func TestSessionStore_Remove(t *testing.T) {
	clk := &fakeClock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	store := services.NewSessionStore(time.Hour, clk)

	session := newTestSession(t, "kid-1")
	store.Put(session)
	store.Remove(session.SessionID)
	assert.Equal(t, 0, store.Len())

	// A second session for the same kid still works after removal.
	store.Put(newTestSession(t, "kid-1"))
	assert.Equal(t, 1, store.Len())
}
