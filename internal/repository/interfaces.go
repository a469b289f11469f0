package repository

import (
	"context"

	"github.com/Sumantkumarraj20/KLD/internal/models"
)

// CompletionRepository handles review schedule data access
type CompletionRepository interface {
	Get(ctx context.Context, kidID string, domain models.Domain, levelNumber int) (*models.LevelCompletion, error)
	Upsert(ctx context.Context, completion models.LevelCompletion) error
	ListForKid(ctx context.Context, kidID string, domain models.Domain) ([]models.LevelCompletion, error)
}

// ProgressRepository handles per-kid progress and star data access
type ProgressRepository interface {
	Get(ctx context.Context, kidID string, domain models.Domain) (*models.KidProgress, error)
	Upsert(ctx context.Context, progress models.KidProgress) error
	GetLevelStars(ctx context.Context, kidID string, domain models.Domain, levelNumber int) (int, error)
	SetLevelStars(ctx context.Context, kidID string, domain models.Domain, levelNumber, stars int) error
	ListLevelStars(ctx context.Context, kidID string, domain models.Domain) ([]models.LevelStars, error)
}

// AwardRepository handles the append-only award history
type AwardRepository interface {
	Insert(ctx context.Context, award models.LevelAward) error
	List(ctx context.Context, filter models.AwardFilter) ([]models.LevelAward, error)
	Count(ctx context.Context, filter models.AwardFilter) (int, error)
	DomainStars(ctx context.Context, kidID string) (map[models.Domain]int, error)
}
