package services

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/Sumantkumarraj20/KLD/internal/clock"
	"github.com/Sumantkumarraj20/KLD/internal/errors"
	"github.com/Sumantkumarraj20/KLD/internal/game"
	"github.com/Sumantkumarraj20/KLD/internal/jobs"
	"github.com/Sumantkumarraj20/KLD/internal/logger"
	"github.com/Sumantkumarraj20/KLD/internal/models"
	"github.com/Sumantkumarraj20/KLD/internal/repository"
	"github.com/Sumantkumarraj20/KLD/internal/scheduler"
)

// StartedSession is what a client needs to begin playing: the session
// identity plus the ordered question set.
type StartedSession struct {
	Session   models.GameSession `json:"session"`
	Level     models.Level       `json:"level"`
	Questions []models.Question  `json:"questions"`
}

// AnswerOutcome reports a graded answer and how much of the level is
// left. Result is set when the answer was the last one and the session
// finished.
type AnswerOutcome struct {
	Answer             models.GameAnswer         `json:"answer"`
	QuestionsRemaining int                       `json:"questions_remaining"`
	Result             *models.GameSessionResult `json:"result,omitempty"`
}

// GameService handles level play business logic
type GameService interface {
	GetLevel(ctx context.Context, kidID string, domain models.Domain, levelNumber int, locale models.Locale) (models.Level, []models.Question, error)
	StartSession(ctx context.Context, kidID string, domain models.Domain, levelNumber int, locale models.Locale) (*StartedSession, error)
	SubmitAnswer(ctx context.Context, sessionID, rawAnswer string, timeTakenSeconds float64) (*AnswerOutcome, error)
	CompleteSession(ctx context.Context, sessionID string) (*models.GameSessionResult, error)
	LockStatus(ctx context.Context, kidID string, domain models.Domain, levelNumber int) (models.LevelLockStatus, error)
	ResetLevelLock(ctx context.Context, kidID string, domain models.Domain, levelNumber int) error
}

type gameService struct {
	completionRepo repository.CompletionRepository
	progressRepo   repository.ProgressRepository
	awardRepo      repository.AwardRepository
	jobQueue       jobs.JobQueue
	store          *SessionStore
	clk            clock.Clock
}

// NewGameService creates a new GameService
func NewGameService(
	completionRepo repository.CompletionRepository,
	progressRepo repository.ProgressRepository,
	awardRepo repository.AwardRepository,
	jobQueue jobs.JobQueue,
	store *SessionStore,
	clk clock.Clock,
) GameService {
	return &gameService{
		completionRepo: completionRepo,
		progressRepo:   progressRepo,
		awardRepo:      awardRepo,
		jobQueue:       jobQueue,
		store:          store,
		clk:            clk,
	}
}

func (s *gameService) GetLevel(ctx context.Context, kidID string, domain models.Domain, levelNumber int, locale models.Locale) (models.Level, []models.Question, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting level: domain=%s, level=%d, locale=%s", domain, levelNumber, locale)

	rng := rand.New(rand.NewSource(s.clk.Now().UnixNano()))
	level, questions, err := game.GenerateLevel(domain, levelNumber, locale, rng)
	if err != nil {
		return models.Level{}, nil, err
	}

	available := levelNumber == 1
	if !available && kidID != "" {
		if err := s.checkUnlocked(ctx, kidID, domain, levelNumber); err == nil {
			available = true
		}
	}
	level.IsAvailable = available

	return level, questions, nil
}

func (s *gameService) StartSession(ctx context.Context, kidID string, domain models.Domain, levelNumber int, locale models.Locale) (*StartedSession, error) {
	log := logger.FromContext(ctx)
	log.Debug("starting session: kid_id=%s, domain=%s, level=%d", kidID, domain, levelNumber)

	if kidID == "" {
		return nil, errors.NewValidationError("kid_id", "must not be empty")
	}
	if levelNumber > 1 {
		if err := s.checkUnlocked(ctx, kidID, domain, levelNumber); err != nil {
			return nil, err
		}
	}

	rng := rand.New(rand.NewSource(s.clk.Now().UnixNano()))
	level, questions, err := game.GenerateLevel(domain, levelNumber, locale, rng)
	if err != nil {
		return nil, err
	}
	level.IsAvailable = true

	session, err := game.NewSession(kidID, level, questions, s.clk.Now())
	if err != nil {
		return nil, err
	}
	s.store.Put(session)

	log.Info("session started: session_id=%s, level=%s", session.SessionID, level.LevelID)
	return &StartedSession{
		Session:   session.GameSession,
		Level:     level,
		Questions: questions,
	}, nil
}

func (s *gameService) SubmitAnswer(ctx context.Context, sessionID, rawAnswer string, timeTakenSeconds float64) (*AnswerOutcome, error) {
	log := logger.FromContext(ctx)
	log.Debug("submitting answer: session_id=%s", sessionID)

	now := s.clk.Now()
	var outcome AnswerOutcome
	var result models.GameSessionResult
	var finished models.GameSession
	var autoCompleted bool
	found, err := s.store.Do(sessionID, func(session *game.Session) error {
		answer, err := session.RecordAnswer(rawAnswer, timeTakenSeconds)
		if err != nil {
			return err
		}
		outcome = AnswerOutcome{
			Answer:             answer,
			QuestionsRemaining: len(session.Questions()) - len(session.Answers),
		}
		// The last answer finishes the level.
		if session.Exhausted() {
			if err := session.Complete(now); err != nil {
				return err
			}
			r, err := session.Result()
			if err != nil {
				return err
			}
			session.StarsEarned = r.StarsEarned
			result = r
			finished = session.GameSession
			autoCompleted = true
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.NewNotFoundError("session", sessionID)
	}

	if autoCompleted {
		if err := s.recordCompletion(ctx, finished, result, now); err != nil {
			return nil, err
		}
		outcome.Result = &result
		log.Info("session finished on final answer: session_id=%s, stars=%d", sessionID, result.StarsEarned)
	}
	return &outcome, nil
}

func (s *gameService) CompleteSession(ctx context.Context, sessionID string) (*models.GameSessionResult, error) {
	log := logger.FromContext(ctx)
	log.Debug("completing session: session_id=%s", sessionID)

	now := s.clk.Now()
	var result models.GameSessionResult
	var completed models.GameSession
	found, err := s.store.Do(sessionID, func(session *game.Session) error {
		if err := session.Complete(now); err != nil {
			return err
		}
		r, err := session.Result()
		if err != nil {
			return err
		}
		session.StarsEarned = r.StarsEarned
		result = r
		completed = session.GameSession
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.NewNotFoundError("session", sessionID)
	}
	// The completed session stays in the store so a late answer is
	// rejected as SESSION_COMPLETED rather than not-found. The sweep
	// drops it eventually.

	if err := s.recordCompletion(ctx, completed, result, now); err != nil {
		return nil, err
	}

	log.Info("session completed: session_id=%s, stars=%d, points=%d", sessionID, result.StarsEarned, result.PointsAwarded)
	return &result, nil
}

func (s *gameService) LockStatus(ctx context.Context, kidID string, domain models.Domain, levelNumber int) (models.LevelLockStatus, error) {
	log := logger.FromContext(ctx)
	log.Debug("checking lock status: kid_id=%s, domain=%s, level=%d", kidID, domain, levelNumber)

	completion, err := s.completionRepo.Get(ctx, kidID, domain, levelNumber)
	if err != nil {
		return models.LevelLockStatus{}, errors.NewInternalError(err)
	}
	return scheduler.LockStatus(completion, s.clk.Now()), nil
}

func (s *gameService) ResetLevelLock(ctx context.Context, kidID string, domain models.Domain, levelNumber int) error {
	log := logger.FromContext(ctx)
	log.Debug("resetting level lock: kid_id=%s, domain=%s, level=%d", kidID, domain, levelNumber)

	completion, err := s.completionRepo.Get(ctx, kidID, domain, levelNumber)
	if err != nil {
		return errors.NewInternalError(err)
	}
	if completion == nil {
		return errors.NewNotFoundError("completion", models.LevelID(domain, levelNumber))
	}

	updated := scheduler.Reset(*completion, s.clk.Now())
	if err := s.completionRepo.Upsert(ctx, updated); err != nil {
		return errors.NewInternalError(err)
	}
	log.Info("level lock reset: kid_id=%s, level=%s", kidID, models.LevelID(domain, levelNumber))
	return nil
}

// checkUnlocked enforces both gates on a level above the first: the
// previous level must have been beaten with enough stars, and the
// level itself must not be cooling down.
func (s *gameService) checkUnlocked(ctx context.Context, kidID string, domain models.Domain, levelNumber int) error {
	levelID := models.LevelID(domain, levelNumber)

	prevStars, err := s.progressRepo.GetLevelStars(ctx, kidID, domain, levelNumber-1)
	if err != nil {
		return errors.NewInternalError(err)
	}
	if prevStars < game.UnlockStars {
		return errors.NewLevelLockedError(levelID,
			fmt.Sprintf("earn at least %d stars on level %d first", game.UnlockStars, levelNumber-1))
	}

	completion, err := s.completionRepo.Get(ctx, kidID, domain, levelNumber)
	if err != nil {
		return errors.NewInternalError(err)
	}
	lock := scheduler.LockStatus(completion, s.clk.Now())
	if lock.IsLocked {
		return errors.NewLevelLockedError(levelID, "unlocks in "+scheduler.FormatUnlock(lock))
	}
	return nil
}

// recordCompletion persists everything a finished session produces:
// the review schedule, the best-of star record, the per-domain
// aggregate and, when points were earned, the award plus its async
// sync to the rewards service.
func (s *gameService) recordCompletion(ctx context.Context, session models.GameSession, result models.GameSessionResult, now time.Time) error {
	log := logger.FromContext(ctx)

	existing, err := s.completionRepo.Get(ctx, session.KidID, session.Domain, session.LevelNumber)
	if err != nil {
		return errors.NewInternalError(err)
	}
	if existing == nil && result.StarsEarned < 1 {
		// A failed first attempt leaves no schedule, so the level can
		// be retried right away.
		log.Debug("failed first attempt, nothing persisted: kid_id=%s, level=%s", session.KidID, session.LevelID)
		return nil
	}

	var completion models.LevelCompletion
	if existing == nil {
		completion = scheduler.NewCompletion(session.KidID, session.Domain, session.LevelNumber, result.StarsEarned, now)
	} else {
		completion = scheduler.Review(*existing, float64(result.StarsEarned), now)
	}
	if err := s.completionRepo.Upsert(ctx, completion); err != nil {
		return errors.NewInternalError(err)
	}

	if result.StarsEarned < 1 {
		// A failed replay only records the shortened review schedule.
		return nil
	}

	if err := s.progressRepo.SetLevelStars(ctx, session.KidID, session.Domain, session.LevelNumber, result.StarsEarned); err != nil {
		return errors.NewInternalError(err)
	}

	if err := s.updateProgress(ctx, session, result, now); err != nil {
		return err
	}

	if result.PointsAwarded > 0 {
		award := models.LevelAward{
			AwardID:       uuid.NewString(),
			KidID:         session.KidID,
			Domain:        session.Domain,
			LevelNumber:   session.LevelNumber,
			StarsEarned:   result.StarsEarned,
			PointsAwarded: result.PointsAwarded,
			Reason: fmt.Sprintf("%s level %d completed with %d stars",
				session.Domain.DisplayName(), session.LevelNumber, result.StarsEarned),
			CompletedAt: now,
		}
		if err := s.awardRepo.Insert(ctx, award); err != nil {
			return errors.NewInternalError(err)
		}
		if err := s.jobQueue.EnqueueAwardSync(award); err != nil {
			// The award is persisted, only the external sync is lost.
			log.Warn("failed to enqueue award sync: %v", err)
		}
	}
	return nil
}

func (s *gameService) updateProgress(ctx context.Context, session models.GameSession, result models.GameSessionResult, now time.Time) error {
	progress, err := s.progressRepo.Get(ctx, session.KidID, session.Domain)
	if err != nil {
		return errors.NewInternalError(err)
	}
	if progress == nil {
		progress = &models.KidProgress{KidID: session.KidID, Domain: session.Domain}
	}

	if result.StarsEarned >= 1 && session.LevelNumber > progress.MaxLevelCompleted {
		progress.MaxLevelCompleted = session.LevelNumber
	}
	progress.SessionsCompleted++
	progress.LastPlayed = now

	// Total stars is the sum of best-of records, so a replay with a
	// worse score never shrinks it.
	stars, err := s.progressRepo.ListLevelStars(ctx, session.KidID, session.Domain)
	if err != nil {
		return errors.NewInternalError(err)
	}
	total := 0
	for _, record := range stars {
		total += record.Stars
	}
	progress.TotalStars = total

	if err := s.progressRepo.Upsert(ctx, *progress); err != nil {
		return errors.NewInternalError(err)
	}
	return nil
}
