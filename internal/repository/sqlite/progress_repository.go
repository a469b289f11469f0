package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Sumantkumarraj20/KLD/internal/logger"
	"github.com/Sumantkumarraj20/KLD/internal/models"
	"github.com/Sumantkumarraj20/KLD/internal/repository"
)

type progressRepository struct {
	db *sql.DB
}

// NewProgressRepository creates a new ProgressRepository implementation
func NewProgressRepository(db *sql.DB) repository.ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) Get(ctx context.Context, kidID string, domain models.Domain) (*models.KidProgress, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("getting progress: kid_id=%s, domain=%s", kidID, domain)

	var p models.KidProgress
	var lastPlayed sql.NullTime
	err := r.db.QueryRowContext(ctx, `
SELECT kid_id, domain, max_level_completed, total_stars, sessions_completed, last_played
FROM kid_progress
WHERE kid_id = ? AND domain = ?
`, kidID, domain).Scan(&p.KidID, &p.Domain, &p.MaxLevelCompleted, &p.TotalStars, &p.SessionsCompleted, &lastPlayed)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("progress not found: kid_id=%s, domain=%s", kidID, domain)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get progress: %v", err)
		return nil, err
	}
	if lastPlayed.Valid {
		p.LastPlayed = lastPlayed.Time
	}
	log.Debug("progress found: max_level=%d, total_stars=%d", p.MaxLevelCompleted, p.TotalStars)
	return &p, nil
}

func (r *progressRepository) Upsert(ctx context.Context, p models.KidProgress) error {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("upserting progress: kid_id=%s, domain=%s, max_level=%d", p.KidID, p.Domain, p.MaxLevelCompleted)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO kid_progress (kid_id, domain, max_level_completed, total_stars, sessions_completed, last_played)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT (kid_id, domain) DO UPDATE SET
    max_level_completed = excluded.max_level_completed,
    total_stars = excluded.total_stars,
    sessions_completed = excluded.sessions_completed,
    last_played = excluded.last_played
`, p.KidID, p.Domain, p.MaxLevelCompleted, p.TotalStars, p.SessionsCompleted, p.LastPlayed)
	if err != nil {
		log.Error("failed to upsert progress: %v", err)
	}
	return err
}

func (r *progressRepository) GetLevelStars(ctx context.Context, kidID string, domain models.Domain, levelNumber int) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("getting level stars: kid_id=%s, domain=%s, level=%d", kidID, domain, levelNumber)

	var stars int
	err := r.db.QueryRowContext(ctx, `
SELECT stars FROM level_stars
WHERE kid_id = ? AND domain = ? AND level_number = ?
`, kidID, domain, levelNumber).Scan(&stars)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		log.Error("failed to get level stars: %v", err)
		return 0, err
	}
	return stars, nil
}

func (r *progressRepository) SetLevelStars(ctx context.Context, kidID string, domain models.Domain, levelNumber, stars int) error {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("setting level stars: kid_id=%s, domain=%s, level=%d, stars=%d", kidID, domain, levelNumber, stars)

	// Best-of semantics: a worse re-attempt never lowers the record.
	_, err := r.db.ExecContext(ctx, `
INSERT INTO level_stars (kid_id, domain, level_number, stars, updated_at)
VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
ON CONFLICT (kid_id, domain, level_number) DO UPDATE SET
    stars = max(level_stars.stars, excluded.stars),
    updated_at = excluded.updated_at
`, kidID, domain, levelNumber, stars)
	if err != nil {
		log.Error("failed to set level stars: %v", err)
	}
	return err
}

func (r *progressRepository) ListLevelStars(ctx context.Context, kidID string, domain models.Domain) ([]models.LevelStars, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("listing level stars: kid_id=%s, domain=%s", kidID, domain)

	rows, err := r.db.QueryContext(ctx, `
SELECT level_number, stars FROM level_stars
WHERE kid_id = ? AND domain = ?
ORDER BY level_number
`, kidID, domain)
	if err != nil {
		log.Error("failed to list level stars: %v", err)
		return nil, err
	}
	defer rows.Close()
	var records []models.LevelStars
	for rows.Next() {
		var s models.LevelStars
		if err := rows.Scan(&s.LevelNumber, &s.Stars); err != nil {
			log.Error("failed to scan level stars row: %v", err)
			return nil, err
		}
		records = append(records, s)
	}
	log.Debug("found %d star records", len(records))
	return records, rows.Err()
}
