package services

import (
	"context"

	"github.com/Sumantkumarraj20/KLD/internal/clock"
	"github.com/Sumantkumarraj20/KLD/internal/errors"
	"github.com/Sumantkumarraj20/KLD/internal/game"
	"github.com/Sumantkumarraj20/KLD/internal/logger"
	"github.com/Sumantkumarraj20/KLD/internal/models"
	"github.com/Sumantkumarraj20/KLD/internal/repository"
	"github.com/Sumantkumarraj20/KLD/internal/scheduler"
)

// DomainProgress bundles everything the level map screen needs for one
// domain.
type DomainProgress struct {
	Progress         models.KidProgress  `json:"progress"`
	LevelStars       []models.LevelStars `json:"level_stars"`
	MaxUnlockedLevel int                 `json:"max_unlocked_level"`
}

// AchievementSummary aggregates a kid's rewarded history across all
// domains.
type AchievementSummary struct {
	KidID       string                `json:"kid_id"`
	TotalPoints int                   `json:"total_points"`
	TotalAwards int                   `json:"total_awards"`
	DomainStars map[models.Domain]int `json:"domain_stars"`
}

// SkillStageMetrics summarizes one band of the language curriculum.
type SkillStageMetrics struct {
	Stage           string  `json:"stage"`
	LevelsCompleted int     `json:"levels_completed"`
	TotalStars      int     `json:"total_stars"`
	BestStars       int     `json:"best_stars"`
	AverageQuality  float64 `json:"average_quality"`
}

// LanguageSkillMetrics breaks a kid's language progress down by band:
// letters, then words, then sentences.
type LanguageSkillMetrics struct {
	KidID  string              `json:"kid_id"`
	Stages []SkillStageMetrics `json:"stages"`
}

// ProgressService handles progress and achievement queries
type ProgressService interface {
	GetProgress(ctx context.Context, kidID string, domain models.Domain) (*DomainProgress, error)
	ListAwards(ctx context.Context, filter models.AwardFilter) ([]models.LevelAward, int, error)
	Achievements(ctx context.Context, kidID string) (*AchievementSummary, error)
	SkillMetrics(ctx context.Context, kidID string) (*LanguageSkillMetrics, error)
}

type progressService struct {
	progressRepo   repository.ProgressRepository
	completionRepo repository.CompletionRepository
	awardRepo      repository.AwardRepository
	clk            clock.Clock
}

// NewProgressService creates a new ProgressService
func NewProgressService(
	progressRepo repository.ProgressRepository,
	completionRepo repository.CompletionRepository,
	awardRepo repository.AwardRepository,
	clk clock.Clock,
) ProgressService {
	return &progressService{
		progressRepo:   progressRepo,
		completionRepo: completionRepo,
		awardRepo:      awardRepo,
		clk:            clk,
	}
}

func (s *progressService) GetProgress(ctx context.Context, kidID string, domain models.Domain) (*DomainProgress, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting progress: kid_id=%s, domain=%s", kidID, domain)

	progress, err := s.progressRepo.Get(ctx, kidID, domain)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if progress == nil {
		progress = &models.KidProgress{KidID: kidID, Domain: domain}
	}

	stars, err := s.progressRepo.ListLevelStars(ctx, kidID, domain)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}

	maxUnlocked, err := s.maxUnlockedLevel(ctx, kidID, domain, stars)
	if err != nil {
		return nil, err
	}

	return &DomainProgress{
		Progress:         *progress,
		LevelStars:       stars,
		MaxUnlockedLevel: maxUnlocked,
	}, nil
}

func (s *progressService) ListAwards(ctx context.Context, filter models.AwardFilter) ([]models.LevelAward, int, error) {
	log := logger.FromContext(ctx)
	log.Debug("listing awards: kid_id=%s, domain=%s", filter.KidID, filter.Domain)

	awards, err := s.awardRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, errors.NewInternalError(err)
	}
	total, err := s.awardRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, errors.NewInternalError(err)
	}
	return awards, total, nil
}

func (s *progressService) Achievements(ctx context.Context, kidID string) (*AchievementSummary, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting achievements: kid_id=%s", kidID)

	domainStars, err := s.awardRepo.DomainStars(ctx, kidID)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}

	awards, err := s.awardRepo.List(ctx, models.AwardFilter{KidID: kidID, Limit: 10000})
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	totalPoints := 0
	for _, a := range awards {
		totalPoints += a.PointsAwarded
	}

	return &AchievementSummary{
		KidID:       kidID,
		TotalPoints: totalPoints,
		TotalAwards: len(awards),
		DomainStars: domainStars,
	}, nil
}

// SkillMetrics aggregates completed language levels into the three
// curriculum bands. Levels 1-5 practice letters, 6-10 words, 11 and up
// sentences.
func (s *progressService) SkillMetrics(ctx context.Context, kidID string) (*LanguageSkillMetrics, error) {
	log := logger.FromContext(ctx)
	log.Debug("computing skill metrics: kid_id=%s", kidID)

	completions, err := s.completionRepo.ListForKid(ctx, kidID, models.DomainLanguage)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}

	stages := []SkillStageMetrics{
		{Stage: "letters"},
		{Stage: "words"},
		{Stage: "sentences"},
	}
	qualitySums := make([]int, len(stages))
	for _, c := range completions {
		idx := 0
		switch {
		case c.LevelNumber <= 5:
			idx = 0
		case c.LevelNumber <= 10:
			idx = 1
		default:
			idx = 2
		}
		stages[idx].LevelsCompleted++
		stages[idx].TotalStars += c.StarsEarned
		if c.StarsEarned > stages[idx].BestStars {
			stages[idx].BestStars = c.StarsEarned
		}
		qualitySums[idx] += c.Quality
	}
	for i := range stages {
		if stages[i].LevelsCompleted > 0 {
			stages[i].AverageQuality = float64(qualitySums[i]) / float64(stages[i].LevelsCompleted)
		}
	}

	return &LanguageSkillMetrics{KidID: kidID, Stages: stages}, nil
}

// maxUnlockedLevel walks the star ladder: each level unlocks the next
// once it has been beaten with enough stars, and a level in cooldown
// caps the walk.
func (s *progressService) maxUnlockedLevel(ctx context.Context, kidID string, domain models.Domain, stars []models.LevelStars) (int, error) {
	starsByLevel := make(map[int]int, len(stars))
	for _, record := range stars {
		starsByLevel[record.LevelNumber] = record.Stars
	}

	maxUnlocked := 1
	for level := 1; level < game.MaxLevelsPerDomain; level++ {
		if starsByLevel[level] < game.UnlockStars {
			break
		}
		completion, err := s.completionRepo.Get(ctx, kidID, domain, level+1)
		if err != nil {
			return 0, errors.NewInternalError(err)
		}
		if scheduler.LockStatus(completion, s.clk.Now()).IsLocked {
			break
		}
		maxUnlocked = level + 1
	}
	return maxUnlocked, nil
}
