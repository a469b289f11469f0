package models

import "time"

// LevelCompletion is the spaced-repetition record for one level. One
// record exists per (kid, domain, level) triple and is overwritten,
// not appended, on each re-attempt.
type LevelCompletion struct {
	KidID        string    `json:"kid_id"`
	Domain       Domain    `json:"domain"`
	LevelNumber  int       `json:"level_number"`
	CompletedAt  time.Time `json:"completed_at"`
	StarsEarned  int       `json:"stars_earned"`
	Quality      int       `json:"quality"`
	Repetitions  int       `json:"repetitions"`
	IntervalDays int       `json:"interval_days"`
	EaseFactor   float64   `json:"ease_factor"`
	NextReviewAt time.Time `json:"next_review_at"`
}

// LevelLockStatus is derived from a LevelCompletion and the current
// time. It is never persisted.
type LevelLockStatus struct {
	IsLocked           bool       `json:"is_locked"`
	NextUnlockAt       *time.Time `json:"next_unlock_at,omitempty"`
	DaysUntilUnlock    int        `json:"days_until_unlock"`
	HoursUntilUnlock   int        `json:"hours_until_unlock"`
	MinutesUntilUnlock int        `json:"minutes_until_unlock"`
}
