package scheduler_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumantkumarraj20/KLD/internal/models"
	"github.com/Sumantkumarraj20/KLD/internal/scheduler"
)

func TestNextInterval_FailureResets(t *testing.T) {
	for q := 0.0; q < 3; q++ {
		interval, ef := scheduler.NextInterval(q, 42, 1.7)
		assert.Equal(t, 1, interval, "quality %v should reset interval", q)
		assert.Equal(t, scheduler.DefaultEaseFactor, ef, "quality %v should reset ease factor", q)
	}
}

func TestNextInterval_FirstAndSecondReview(t *testing.T) {
	interval, ef := scheduler.NextInterval(5, 0, 2.5)
	assert.Equal(t, 1, interval, "first ever review should schedule 1 day")
	assert.InDelta(t, 2.6, ef, 0.0001)

	interval, _ = scheduler.NextInterval(5, 1, ef)
	assert.Equal(t, 3, interval, "second review should schedule 3 days")
}

func TestNextInterval_GrowsByEaseFactor(t *testing.T) {
	interval, ef := scheduler.NextInterval(4, 6, 2.5)
	assert.InDelta(t, 2.5, ef, 0.0001, "quality 4 keeps ease factor flat")
	assert.Equal(t, 15, interval, "6 * 2.5 = 15")

	interval, ef = scheduler.NextInterval(3, 10, 2.5)
	assert.InDelta(t, 2.36, ef, 0.0001)
	assert.Equal(t, 24, interval, "ceil(10 * 2.36) = 24")
}

func TestNextInterval_EaseFactorFloor(t *testing.T) {
	_, ef := scheduler.NextInterval(3, 5, scheduler.MinEaseFactor)
	assert.Equal(t, scheduler.MinEaseFactor, ef, "ease factor should not drop below %v", scheduler.MinEaseFactor)
}

func TestNextInterval_QualityClamped(t *testing.T) {
	interval, ef := scheduler.NextInterval(9, 2, 2.5)
	wantInterval, wantEF := scheduler.NextInterval(5, 2, 2.5)
	assert.Equal(t, wantInterval, interval)
	assert.Equal(t, wantEF, ef)

	interval, ef = scheduler.NextInterval(-3, 2, 2.5)
	assert.Equal(t, 1, interval)
	assert.Equal(t, scheduler.DefaultEaseFactor, ef)
}

func TestNextInterval_Monotonic(t *testing.T) {
	prev := 0
	for _, previousInterval := range []int{2, 3, 5, 8, 13, 21, 50} {
		interval, _ := scheduler.NextInterval(4, previousInterval, 1.3)
		assert.GreaterOrEqual(t, interval, prev,
			"interval should be non-decreasing as previous interval grows")
		prev = interval
	}
}

func TestNewCompletion(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	c := scheduler.NewCompletion("kid-1", models.DomainMathematics, 4, 5, now)

	assert.Equal(t, "kid-1", c.KidID)
	assert.Equal(t, models.DomainMathematics, c.Domain)
	assert.Equal(t, 4, c.LevelNumber)
	assert.Equal(t, 5, c.StarsEarned)
	assert.Equal(t, 5, c.Quality)
	assert.Equal(t, 1, c.Repetitions)
	assert.Equal(t, 1, c.IntervalDays)
	assert.Equal(t, scheduler.DefaultEaseFactor, c.EaseFactor)
	assert.Equal(t, now.Add(24*time.Hour), c.NextReviewAt)
}

func TestReview_SuccessfulRepeat(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	c := scheduler.NewCompletion("kid-1", models.DomainLanguage, 2, 5, now.Add(-25*time.Hour))

	updated := scheduler.Review(c, 5, now)

	assert.Equal(t, 2, updated.Repetitions)
	assert.Equal(t, 3, updated.IntervalDays, "previous interval 1 steps to 3")
	assert.InDelta(t, 2.6, updated.EaseFactor, 0.0001)
	assert.Equal(t, now.Add(3*24*time.Hour), updated.NextReviewAt)
	assert.Equal(t, now, updated.CompletedAt)
}

func TestReview_StarsOnlyImprove(t *testing.T) {
	now := time.Now()
	c := scheduler.NewCompletion("kid-1", models.DomainLogical, 7, 5, now)

	updated := scheduler.Review(c, 3, now)

	assert.Equal(t, 5, updated.StarsEarned, "a worse attempt must not lower the star record")
	assert.Equal(t, 3, updated.Quality)
}

func TestReview_FailureResetsProgression(t *testing.T) {
	now := time.Now()
	c := scheduler.NewCompletion("kid-1", models.DomainMathematics, 3, 4, now)
	c.IntervalDays = 15
	c.EaseFactor = 2.8

	updated := scheduler.Review(c, 2, now)

	assert.Equal(t, 1, updated.IntervalDays)
	assert.Equal(t, scheduler.DefaultEaseFactor, updated.EaseFactor)
	assert.Equal(t, now.Add(24*time.Hour), updated.NextReviewAt)
}

func TestLockStatus_NoCompletion(t *testing.T) {
	status := scheduler.LockStatus(nil, time.Now())
	assert.False(t, status.IsLocked)
	assert.Nil(t, status.NextUnlockAt)
}

func TestLockStatus_NoScheduledReview(t *testing.T) {
	c := models.LevelCompletion{KidID: "kid-1", Domain: models.DomainLanguage, LevelNumber: 1}
	status := scheduler.LockStatus(&c, time.Now())
	assert.False(t, status.IsLocked)
}

func TestLockStatus_Unlocked(t *testing.T) {
	now := time.Date(2025, 6, 3, 12, 0, 0, 0, time.UTC)
	c := models.LevelCompletion{NextReviewAt: now.Add(-time.Minute)}

	status := scheduler.LockStatus(&c, now)
	assert.False(t, status.IsLocked)

	// Unlock boundary is inclusive.
	c.NextReviewAt = now
	status = scheduler.LockStatus(&c, now)
	assert.False(t, status.IsLocked)
}

func TestLockStatus_RemainderBreakdown(t *testing.T) {
	now := time.Date(2025, 6, 3, 12, 0, 0, 0, time.UTC)
	c := models.LevelCompletion{
		NextReviewAt: now.Add(2*24*time.Hour + 5*time.Hour + 30*time.Minute),
	}

	status := scheduler.LockStatus(&c, now)

	require.True(t, status.IsLocked)
	require.NotNil(t, status.NextUnlockAt)
	assert.Equal(t, c.NextReviewAt, *status.NextUnlockAt)
	assert.Equal(t, 2, status.DaysUntilUnlock)
	assert.Equal(t, 5, status.HoursUntilUnlock)
	assert.Equal(t, 30, status.MinutesUntilUnlock)
}

func TestLockStatus_Idempotent(t *testing.T) {
	now := time.Date(2025, 6, 3, 8, 15, 0, 0, time.UTC)
	c := models.LevelCompletion{NextReviewAt: now.Add(36 * time.Hour)}

	first := scheduler.LockStatus(&c, now)
	second := scheduler.LockStatus(&c, now)

	assert.Equal(t, first, second, "same completion and clock must yield identical status")
}

func TestReset_OnlyTouchesNextReview(t *testing.T) {
	now := time.Date(2025, 6, 4, 10, 0, 0, 0, time.UTC)
	c := scheduler.NewCompletion("kid-1", models.DomainLogical, 5, 4, now.Add(-48*time.Hour))
	c.IntervalDays = 9
	c.EaseFactor = 2.7
	c.Repetitions = 3

	reset := scheduler.Reset(c, now)

	assert.Equal(t, now, reset.NextReviewAt)
	assert.Equal(t, 9, reset.IntervalDays)
	assert.Equal(t, 2.7, reset.EaseFactor)
	assert.Equal(t, 3, reset.Repetitions)
	assert.False(t, scheduler.LockStatus(&reset, now).IsLocked)
}

func TestFormatUnlock(t *testing.T) {
	tests := []struct {
		name string
		lock models.LevelLockStatus
		want string
	}{
		{"unlocked", models.LevelLockStatus{}, ""},
		{"minutes only", models.LevelLockStatus{IsLocked: true, MinutesUntilUnlock: 12}, "12 min"},
		{"hours and minutes", models.LevelLockStatus{IsLocked: true, HoursUntilUnlock: 3, MinutesUntilUnlock: 4}, "3h 4m"},
		{"days and hours", models.LevelLockStatus{IsLocked: true, DaysUntilUnlock: 2, HoursUntilUnlock: 7, MinutesUntilUnlock: 1}, "2d 7h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scheduler.FormatUnlock(tt.lock))
		})
	}
}

func TestCompletion_JSONRoundTrip(t *testing.T) {
	now := time.Date(2025, 6, 5, 14, 30, 0, 0, time.UTC)
	c := scheduler.Review(scheduler.NewCompletion("kid-9", models.DomainMathematics, 12, 4, now), 4, now.Add(26*time.Hour))

	data, err := json.Marshal(c)
	require.NoError(t, err)

	var decoded models.LevelCompletion
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, c.IntervalDays, decoded.IntervalDays)
	assert.Equal(t, c.EaseFactor, decoded.EaseFactor)
	assert.True(t, c.NextReviewAt.Equal(decoded.NextReviewAt))
	assert.Equal(t, c.Repetitions, decoded.Repetitions)
}
