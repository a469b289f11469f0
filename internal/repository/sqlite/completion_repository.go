package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Sumantkumarraj20/KLD/internal/logger"
	"github.com/Sumantkumarraj20/KLD/internal/models"
	"github.com/Sumantkumarraj20/KLD/internal/repository"
)

type completionRepository struct {
	db *sql.DB
}

// NewCompletionRepository creates a new CompletionRepository implementation
func NewCompletionRepository(db *sql.DB) repository.CompletionRepository {
	return &completionRepository{db: db}
}

func (r *completionRepository) Get(ctx context.Context, kidID string, domain models.Domain, levelNumber int) (*models.LevelCompletion, error) {
	log := logger.FromContext(ctx).WithPrefix("completion_repo")
	log.Debug("getting completion: kid_id=%s, domain=%s, level=%d", kidID, domain, levelNumber)

	var c models.LevelCompletion
	var nextReview sql.NullTime
	err := r.db.QueryRowContext(ctx, `
SELECT kid_id, domain, level_number, completed_at, stars_earned, quality, repetitions, interval_days, ease_factor, next_review_at
FROM level_completions
WHERE kid_id = ? AND domain = ? AND level_number = ?
`, kidID, domain, levelNumber).Scan(&c.KidID, &c.Domain, &c.LevelNumber, &c.CompletedAt, &c.StarsEarned, &c.Quality, &c.Repetitions, &c.IntervalDays, &c.EaseFactor, &nextReview)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("completion not found: kid_id=%s, level=%d", kidID, levelNumber)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get completion: %v", err)
		return nil, err
	}
	if nextReview.Valid {
		c.NextReviewAt = nextReview.Time
	}
	log.Debug("completion found: stars=%d, repetitions=%d", c.StarsEarned, c.Repetitions)
	return &c, nil
}

func (r *completionRepository) Upsert(ctx context.Context, c models.LevelCompletion) error {
	log := logger.FromContext(ctx).WithPrefix("completion_repo")
	log.Debug("upserting completion: kid_id=%s, domain=%s, level=%d, interval=%d, ease=%.2f",
		c.KidID, c.Domain, c.LevelNumber, c.IntervalDays, c.EaseFactor)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO level_completions (kid_id, domain, level_number, completed_at, stars_earned, quality, repetitions, interval_days, ease_factor, next_review_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (kid_id, domain, level_number) DO UPDATE SET
    completed_at = excluded.completed_at,
    stars_earned = excluded.stars_earned,
    quality = excluded.quality,
    repetitions = excluded.repetitions,
    interval_days = excluded.interval_days,
    ease_factor = excluded.ease_factor,
    next_review_at = excluded.next_review_at
`, c.KidID, c.Domain, c.LevelNumber, c.CompletedAt, c.StarsEarned, c.Quality, c.Repetitions, c.IntervalDays, c.EaseFactor, c.NextReviewAt)
	if err != nil {
		log.Error("failed to upsert completion: %v", err)
	}
	return err
}

func (r *completionRepository) ListForKid(ctx context.Context, kidID string, domain models.Domain) ([]models.LevelCompletion, error) {
	log := logger.FromContext(ctx).WithPrefix("completion_repo")
	log.Debug("listing completions: kid_id=%s, domain=%s", kidID, domain)

	rows, err := r.db.QueryContext(ctx, `
SELECT kid_id, domain, level_number, completed_at, stars_earned, quality, repetitions, interval_days, ease_factor, next_review_at
FROM level_completions
WHERE kid_id = ? AND domain = ?
ORDER BY level_number
`, kidID, domain)
	if err != nil {
		log.Error("failed to list completions: %v", err)
		return nil, err
	}
	defer rows.Close()
	var completions []models.LevelCompletion
	for rows.Next() {
		var c models.LevelCompletion
		var nextReview sql.NullTime
		if err := rows.Scan(&c.KidID, &c.Domain, &c.LevelNumber, &c.CompletedAt, &c.StarsEarned, &c.Quality, &c.Repetitions, &c.IntervalDays, &c.EaseFactor, &nextReview); err != nil {
			log.Error("failed to scan completion row: %v", err)
			return nil, err
		}
		if nextReview.Valid {
			c.NextReviewAt = nextReview.Time
		}
		completions = append(completions, c)
	}
	log.Debug("found %d completions", len(completions))
	return completions, rows.Err()
}
