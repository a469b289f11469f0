package sqlite

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/Sumantkumarraj20/KLD/internal/logger"
	"github.com/Sumantkumarraj20/KLD/internal/models"
	"github.com/Sumantkumarraj20/KLD/internal/repository"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

type awardRepository struct {
	db *sql.DB
}

// NewAwardRepository creates a new AwardRepository implementation
func NewAwardRepository(db *sql.DB) repository.AwardRepository {
	return &awardRepository{db: db}
}

func (r *awardRepository) Insert(ctx context.Context, a models.LevelAward) error {
	log := logger.FromContext(ctx).WithPrefix("award_repo")
	log.Debug("inserting award: kid_id=%s, domain=%s, level=%d, points=%d", a.KidID, a.Domain, a.LevelNumber, a.PointsAwarded)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO level_awards (id, kid_id, domain, level_number, stars_earned, points_awarded, reason, completed_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`, a.AwardID, a.KidID, a.Domain, a.LevelNumber, a.StarsEarned, a.PointsAwarded, a.Reason, a.CompletedAt)
	if err != nil {
		log.Error("failed to insert award: %v", err)
	}
	return err
}

func (r *awardRepository) List(ctx context.Context, filter models.AwardFilter) ([]models.LevelAward, error) {
	log := logger.FromContext(ctx).WithPrefix("award_repo")
	log.Debug("listing awards with filter: kid_id=%s, domain=%s", filter.KidID, filter.Domain)

	query := sqlBuilder.Select(
		"id", "kid_id", "domain", "level_number", "stars_earned", "points_awarded", "reason", "completed_at",
	).From("level_awards")

	// Dynamic WHERE clauses
	if filter.KidID != "" {
		query = query.Where(squirrel.Eq{"kid_id": filter.KidID})
	}
	if filter.Domain != "" {
		query = query.Where(squirrel.Eq{"domain": filter.Domain})
	}

	// Safe ORDER BY with validation
	orderDir := "DESC"
	if filter.OrderDir == "ASC" {
		orderDir = "ASC"
	}
	query = query.OrderBy("completed_at " + orderDir)

	// Pagination
	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	query = query.Limit(uint64(limit)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sql, args...)
	if err != nil {
		log.Error("failed to list awards: %v", err)
		return nil, err
	}
	defer rows.Close()
	var awards []models.LevelAward
	for rows.Next() {
		var a models.LevelAward
		if err := rows.Scan(&a.AwardID, &a.KidID, &a.Domain, &a.LevelNumber, &a.StarsEarned, &a.PointsAwarded, &a.Reason, &a.CompletedAt); err != nil {
			log.Error("failed to scan award row: %v", err)
			return nil, err
		}
		awards = append(awards, a)
	}
	log.Debug("found %d awards", len(awards))
	return awards, rows.Err()
}

func (r *awardRepository) Count(ctx context.Context, filter models.AwardFilter) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("award_repo")

	query := sqlBuilder.Select("COUNT(*)").From("level_awards")

	// Same WHERE logic as List()
	if filter.KidID != "" {
		query = query.Where(squirrel.Eq{"kid_id": filter.KidID})
	}
	if filter.Domain != "" {
		query = query.Where(squirrel.Eq{"domain": filter.Domain})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build count query: %v", err)
		return 0, err
	}

	var count int
	if err := r.db.QueryRowContext(ctx, sql, args...).Scan(&count); err != nil {
		log.Error("failed to count awards: %v", err)
		return 0, err
	}
	return count, nil
}

func (r *awardRepository) DomainStars(ctx context.Context, kidID string) (map[models.Domain]int, error) {
	log := logger.FromContext(ctx).WithPrefix("award_repo")
	log.Debug("aggregating domain stars: kid_id=%s", kidID)

	rows, err := r.db.QueryContext(ctx, `
SELECT domain, SUM(stars_earned)
FROM level_awards
WHERE kid_id = ?
GROUP BY domain
`, kidID)
	if err != nil {
		log.Error("failed to aggregate domain stars: %v", err)
		return nil, err
	}
	defer rows.Close()
	stars := make(map[models.Domain]int)
	for rows.Next() {
		var domain models.Domain
		var total int
		if err := rows.Scan(&domain, &total); err != nil {
			log.Error("failed to scan domain stars row: %v", err)
			return nil, err
		}
		stars[domain] = total
	}
	return stars, rows.Err()
}
