package models

import (
	"fmt"
	"time"
)

// Domain identifies one of the three learning subjects.
type Domain string

const (
	DomainLanguage    Domain = "language"
	DomainMathematics Domain = "mathematics"
	DomainLogical     Domain = "logical"
)

// Domains lists every supported domain.
var Domains = []Domain{DomainLanguage, DomainMathematics, DomainLogical}

// ParseDomain validates a raw domain string.
func ParseDomain(s string) (Domain, error) {
	switch Domain(s) {
	case DomainLanguage, DomainMathematics, DomainLogical:
		return Domain(s), nil
	}
	return "", fmt.Errorf("unknown domain %q", s)
}

// DisplayName returns the human-readable name used in award reasons.
func (d Domain) DisplayName() string {
	switch d {
	case DomainLanguage:
		return "Language"
	case DomainMathematics:
		return "Mathematics"
	case DomainLogical:
		return "Logical"
	}
	return string(d)
}

// Locale selects the content bank for language questions.
type Locale string

const (
	LocaleEnglish Locale = "en"
	LocaleHindi   Locale = "hi"
	LocaleChinese Locale = "zh"
)

// ParseLocale validates a raw locale string. Empty input maps to the
// given fallback so callers can apply a configured default.
func ParseLocale(s string, fallback Locale) (Locale, error) {
	if s == "" {
		return fallback, nil
	}
	switch Locale(s) {
	case LocaleEnglish, LocaleHindi, LocaleChinese:
		return Locale(s), nil
	}
	return "", fmt.Errorf("unsupported locale %q", s)
}

// Difficulty tiers a question or a level.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Level describes a playable level before any session exists.
type Level struct {
	LevelID     string     `json:"level_id"`
	Domain      Domain     `json:"domain"`
	LevelNumber int        `json:"level_number"`
	Difficulty  Difficulty `json:"difficulty"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	MaxStars    int        `json:"max_stars"`
	IsAvailable bool       `json:"is_available"`
}

// LevelID builds the canonical identifier for a (domain, level) pair.
func LevelID(domain Domain, levelNumber int) string {
	return fmt.Sprintf("%s-level-%d", domain, levelNumber)
}

// KidProgress is the per-domain aggregate for a kid.
type KidProgress struct {
	KidID             string    `json:"kid_id"`
	Domain            Domain    `json:"domain"`
	MaxLevelCompleted int       `json:"max_level_completed"`
	TotalStars        int       `json:"total_stars"`
	SessionsCompleted int       `json:"sessions_completed"`
	LastPlayed        time.Time `json:"last_played"`
}

// LevelStars is the best star record for a single level, updated with
// max() on every completion, never overwritten downward.
type LevelStars struct {
	LevelNumber int `json:"level_number"`
	Stars       int `json:"stars"`
}

// LevelAward is the append-only record of a rewarded completion.
type LevelAward struct {
	AwardID       string    `json:"award_id"`
	KidID         string    `json:"kid_id"`
	Domain        Domain    `json:"domain"`
	LevelNumber   int       `json:"level_number"`
	StarsEarned   int       `json:"stars_earned"`
	PointsAwarded int       `json:"points_awarded"`
	Reason        string    `json:"reason"`
	CompletedAt   time.Time `json:"completed_at"`
}

// AwardFilter narrows award-history listings.
type AwardFilter struct {
	KidID    string
	Domain   Domain
	Limit    int
	Offset   int
	OrderDir string
}
