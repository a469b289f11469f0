package scheduler

import (
	"fmt"
	"math"
	"time"

	"github.com/Sumantkumarraj20/KLD/internal/models"
)

const (
	// DefaultEaseFactor is the SM-2 starting ease factor.
	DefaultEaseFactor = 2.5
	// MinEaseFactor is the SM-2 floor below which ease never drops.
	MinEaseFactor = 1.3
	// MinIntervalDays is the shortest allowed cooldown.
	MinIntervalDays = 1
)

// NextInterval computes the next review interval and ease factor using
// a SuperMemo-2 variant. Quality runs 0..5 where 5 is perfect; values
// outside the range are rounded and clamped.
//
// A failed review (quality < 3) resets the interval to 1 day and the
// ease factor to its default. Canonical SM-2 keeps the ease factor on
// failure; discarding it matches the product intent of letting a kid
// restart a level fresh after a bad attempt.
func NextInterval(quality float64, previousInterval int, previousEaseFactor float64) (int, float64) {
	q := int(math.Round(quality))
	if q < 0 {
		q = 0
	}
	if q > 5 {
		q = 5
	}

	if q < 3 {
		return MinIntervalDays, DefaultEaseFactor
	}

	ef := previousEaseFactor + 0.1 - float64(5-q)*(0.08+float64(5-q)*0.02)
	if ef < MinEaseFactor {
		ef = MinEaseFactor
	}

	var interval int
	switch {
	case previousInterval == 0:
		interval = 1
	case previousInterval == 1:
		interval = 3
	default:
		interval = int(math.Ceil(float64(previousInterval) * ef))
	}
	if interval < MinIntervalDays {
		interval = MinIntervalDays
	}
	return interval, ef
}

// NewCompletion creates the first completion record for a level. Stars
// earned map directly onto the 0..5 quality scale.
func NewCompletion(kidID string, domain models.Domain, levelNumber, starsEarned int, now time.Time) models.LevelCompletion {
	quality := starsEarned
	if quality < 0 {
		quality = 0
	}
	if quality > 5 {
		quality = 5
	}

	return models.LevelCompletion{
		KidID:        kidID,
		Domain:       domain,
		LevelNumber:  levelNumber,
		CompletedAt:  now,
		StarsEarned:  starsEarned,
		Quality:      quality,
		Repetitions:  1,
		IntervalDays: 1,
		EaseFactor:   DefaultEaseFactor,
		NextReviewAt: now.Add(24 * time.Hour),
	}
}

// Review applies a repeat attempt to an existing completion record and
// schedules the next unlock. The star record only ever improves.
func Review(completion models.LevelCompletion, quality float64, now time.Time) models.LevelCompletion {
	interval, ef := NextInterval(quality, completion.IntervalDays, completion.EaseFactor)

	stars := int(math.Round(quality))
	if stars < completion.StarsEarned {
		stars = completion.StarsEarned
	}

	completion.CompletedAt = now
	completion.StarsEarned = stars
	completion.Quality = clampQuality(quality)
	completion.Repetitions++
	completion.IntervalDays = interval
	completion.EaseFactor = ef
	completion.NextReviewAt = now.Add(time.Duration(interval) * 24 * time.Hour)
	return completion
}

// LockStatus reports whether a level is currently locked by its
// cooldown. A nil completion or one without a scheduled review means
// unlocked. Remaining time is a true remainder breakdown of the
// millisecond difference.
func LockStatus(completion *models.LevelCompletion, now time.Time) models.LevelLockStatus {
	if completion == nil || completion.NextReviewAt.IsZero() {
		return models.LevelLockStatus{}
	}
	if !now.Before(completion.NextReviewAt) {
		return models.LevelLockStatus{}
	}

	diffMs := completion.NextReviewAt.Sub(now).Milliseconds()
	const (
		dayMs    = 24 * 60 * 60 * 1000
		hourMs   = 60 * 60 * 1000
		minuteMs = 60 * 1000
	)

	unlockAt := completion.NextReviewAt
	return models.LevelLockStatus{
		IsLocked:           true,
		NextUnlockAt:       &unlockAt,
		DaysUntilUnlock:    int(diffMs / dayMs),
		HoursUntilUnlock:   int((diffMs % dayMs) / hourMs),
		MinutesUntilUnlock: int((diffMs % hourMs) / minuteMs),
	}
}

// Reset is the administrative override: the level unlocks immediately
// but interval, ease factor and repetitions are untouched, so the next
// genuine review continues the existing progression.
func Reset(completion models.LevelCompletion, now time.Time) models.LevelCompletion {
	completion.NextReviewAt = now
	return completion
}

// FormatUnlock renders the remaining lock time for display.
func FormatUnlock(lock models.LevelLockStatus) string {
	if !lock.IsLocked {
		return ""
	}
	switch {
	case lock.DaysUntilUnlock == 0 && lock.HoursUntilUnlock == 0:
		return fmt.Sprintf("%d min", lock.MinutesUntilUnlock)
	case lock.DaysUntilUnlock == 0:
		return fmt.Sprintf("%dh %dm", lock.HoursUntilUnlock, lock.MinutesUntilUnlock)
	default:
		return fmt.Sprintf("%dd %dh", lock.DaysUntilUnlock, lock.HoursUntilUnlock)
	}
}

func clampQuality(quality float64) int {
	q := int(math.Round(quality))
	if q < 0 {
		return 0
	}
	if q > 5 {
		return 5
	}
	return q
}
