package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Sumantkumarraj20/KLD/internal/clock"
	"github.com/Sumantkumarraj20/KLD/internal/errors"
	"github.com/Sumantkumarraj20/KLD/internal/models"
	"github.com/Sumantkumarraj20/KLD/internal/services"
	"github.com/Sumantkumarraj20/KLD/internal/testutil/mocks"
)

var fixedNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

type gameServiceFixture struct {
	completionRepo *mocks.MockCompletionRepository
	progressRepo   *mocks.MockProgressRepository
	awardRepo      *mocks.MockAwardRepository
	jobQueue       *mocks.MockJobQueue
	store          *services.SessionStore
	svc            services.GameService
}

func newGameServiceFixture() *gameServiceFixture {
	f := &gameServiceFixture{
		completionRepo: new(mocks.MockCompletionRepository),
		progressRepo:   new(mocks.MockProgressRepository),
		awardRepo:      new(mocks.MockAwardRepository),
		jobQueue:       new(mocks.MockJobQueue),
	}
	clk := clock.Fixed{Time: fixedNow}
	f.store = services.NewSessionStore(time.Hour, clk)
	f.svc = services.NewGameService(f.completionRepo, f.progressRepo, f.awardRepo, f.jobQueue, f.store, clk)
	return f
}

func TestStartSession_FirstLevelAlwaysAllowed(t *testing.T) {
	f := newGameServiceFixture()

	started, err := f.svc.StartSession(context.Background(), "kid-1", models.DomainMathematics, 1, models.LocaleEnglish)
	require.NoError(t, err)
	assert.NotEmpty(t, started.Session.SessionID)
	assert.Equal(t, "mathematics-level-1", started.Level.LevelID)
	assert.NotEmpty(t, started.Questions)

	// No unlock checks hit the repositories for level 1.
	f.progressRepo.AssertNotCalled(t, "GetLevelStars", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.completionRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestStartSession_BlockedByPreviousStars(t *testing.T) {
	f := newGameServiceFixture()
	f.progressRepo.On("GetLevelStars", mock.Anything, "kid-1", models.DomainMathematics, 2).Return(2, nil)

	_, err := f.svc.StartSession(context.Background(), "kid-1", models.DomainMathematics, 3, models.LocaleEnglish)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeLevelLocked))
}

func TestStartSession_BlockedByCooldown(t *testing.T) {
	f := newGameServiceFixture()
	f.progressRepo.On("GetLevelStars", mock.Anything, "kid-1", models.DomainMathematics, 1).Return(4, nil)
	f.completionRepo.On("Get", mock.Anything, "kid-1", models.DomainMathematics, 2).Return(&models.LevelCompletion{
		KidID:        "kid-1",
		Domain:       models.DomainMathematics,
		LevelNumber:  2,
		NextReviewAt: fixedNow.Add(2 * time.Hour),
	}, nil)

	_, err := f.svc.StartSession(context.Background(), "kid-1", models.DomainMathematics, 2, models.LocaleEnglish)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeLevelLocked))
}

func TestStartSession_AllowedWhenUnlocked(t *testing.T) {
	f := newGameServiceFixture()
	f.progressRepo.On("GetLevelStars", mock.Anything, "kid-1", models.DomainMathematics, 1).Return(3, nil)
	f.completionRepo.On("Get", mock.Anything, "kid-1", models.DomainMathematics, 2).Return(nil, nil)

	started, err := f.svc.StartSession(context.Background(), "kid-1", models.DomainMathematics, 2, models.LocaleEnglish)
	require.NoError(t, err)
	assert.Equal(t, 2, started.Session.LevelNumber)
}

func TestSubmitAnswer_UnknownSession(t *testing.T) {
	f := newGameServiceFixture()

	_, err := f.svc.SubmitAnswer(context.Background(), "nope", "1", 3)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeNotFound))
}

func expectPersistence(f *gameServiceFixture) {
	f.completionRepo.On("Get", mock.Anything, "kid-1", models.DomainMathematics, 1).Return(nil, nil)
	f.completionRepo.On("Upsert", mock.Anything, mock.AnythingOfType("models.LevelCompletion")).Return(nil)
	f.progressRepo.On("SetLevelStars", mock.Anything, "kid-1", models.DomainMathematics, 1, mock.AnythingOfType("int")).Return(nil)
	f.progressRepo.On("Get", mock.Anything, "kid-1", models.DomainMathematics).Return(nil, nil)
	f.progressRepo.On("ListLevelStars", mock.Anything, "kid-1", models.DomainMathematics).
		Return([]models.LevelStars{{LevelNumber: 1, Stars: 5}}, nil)
	f.progressRepo.On("Upsert", mock.Anything, mock.AnythingOfType("models.KidProgress")).Return(nil)
	f.awardRepo.On("Insert", mock.Anything, mock.AnythingOfType("models.LevelAward")).Return(nil)
	f.jobQueue.On("EnqueueAwardSync", mock.AnythingOfType("models.LevelAward")).Return(nil)
}

func TestPlayThrough_PerfectRun(t *testing.T) {
	f := newGameServiceFixture()
	expectPersistence(f)

	ctx := context.Background()
	started, err := f.svc.StartSession(ctx, "kid-1", models.DomainMathematics, 1, models.LocaleEnglish)
	require.NoError(t, err)

	var last *services.AnswerOutcome
	for _, q := range started.Questions {
		last, err = f.svc.SubmitAnswer(ctx, started.Session.SessionID, q.Expected(), 2)
		require.NoError(t, err)
		assert.True(t, last.Answer.IsCorrect)
	}

	// The final answer finishes the level.
	require.NotNil(t, last.Result)
	assert.Equal(t, 0, last.QuestionsRemaining)
	assert.Equal(t, 5, last.Result.StarsEarned)
	assert.Equal(t, 100, last.Result.Percentage)
	assert.True(t, last.Result.NextLevelAvailable)
	assert.Greater(t, last.Result.PointsAwarded, 0)

	f.completionRepo.AssertCalled(t, "Upsert", mock.Anything, mock.AnythingOfType("models.LevelCompletion"))
	f.awardRepo.AssertCalled(t, "Insert", mock.Anything, mock.AnythingOfType("models.LevelAward"))
	f.jobQueue.AssertCalled(t, "EnqueueAwardSync", mock.AnythingOfType("models.LevelAward"))

	// A straggler answer after the finish is a state error, not a 404.
	_, err = f.svc.SubmitAnswer(ctx, started.Session.SessionID, "1", 1)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeSessionCompleted))
}

func TestPlayThrough_FailedRunAwardsNothing(t *testing.T) {
	f := newGameServiceFixture()
	f.completionRepo.On("Get", mock.Anything, "kid-1", models.DomainMathematics, 1).Return(nil, nil)

	ctx := context.Background()
	started, err := f.svc.StartSession(ctx, "kid-1", models.DomainMathematics, 1, models.LocaleEnglish)
	require.NoError(t, err)

	var last *services.AnswerOutcome
	for range started.Questions {
		last, err = f.svc.SubmitAnswer(ctx, started.Session.SessionID, "not-a-number", 2)
		require.NoError(t, err)
		assert.False(t, last.Answer.IsCorrect)
	}

	require.NotNil(t, last.Result)
	assert.Equal(t, 0, last.Result.StarsEarned)
	assert.Equal(t, 0, last.Result.PointsAwarded)
	assert.False(t, last.Result.IsCompleted)

	// A failed first attempt persists nothing: no schedule that would
	// lock the level, no star record, no award, no sync job.
	f.completionRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	f.progressRepo.AssertNotCalled(t, "SetLevelStars", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.awardRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	f.jobQueue.AssertNotCalled(t, "EnqueueAwardSync", mock.Anything)
}

func TestPlayThrough_FailedReplayShortensSchedule(t *testing.T) {
	f := newGameServiceFixture()
	existing := &models.LevelCompletion{
		KidID:        "kid-1",
		Domain:       models.DomainMathematics,
		LevelNumber:  1,
		StarsEarned:  4,
		Quality:      4,
		Repetitions:  2,
		IntervalDays: 3,
		EaseFactor:   2.5,
		NextReviewAt: fixedNow.Add(-time.Hour),
	}
	f.completionRepo.On("Get", mock.Anything, "kid-1", models.DomainMathematics, 1).Return(existing, nil)
	var upserted models.LevelCompletion
	f.completionRepo.On("Upsert", mock.Anything, mock.AnythingOfType("models.LevelCompletion")).
		Run(func(args mock.Arguments) {
			upserted = args.Get(1).(models.LevelCompletion)
		}).Return(nil)

	ctx := context.Background()
	started, err := f.svc.StartSession(ctx, "kid-1", models.DomainMathematics, 1, models.LocaleEnglish)
	require.NoError(t, err)
	for range started.Questions {
		_, err = f.svc.SubmitAnswer(ctx, started.Session.SessionID, "wrong", 2)
		require.NoError(t, err)
	}

	// The failed review resets the schedule but keeps the best stars.
	assert.Equal(t, 1, upserted.IntervalDays)
	assert.Equal(t, 4, upserted.StarsEarned)
	f.progressRepo.AssertNotCalled(t, "SetLevelStars", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.awardRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestCompleteSession_ForceCompletePartial(t *testing.T) {
	f := newGameServiceFixture()
	expectPersistence(f)

	ctx := context.Background()
	started, err := f.svc.StartSession(ctx, "kid-1", models.DomainMathematics, 1, models.LocaleEnglish)
	require.NoError(t, err)

	// Answer everything but the last question correctly, then the
	// clock runs out and the client force-completes.
	for _, q := range started.Questions[:len(started.Questions)-1] {
		_, err = f.svc.SubmitAnswer(ctx, started.Session.SessionID, q.Expected(), 3)
		require.NoError(t, err)
	}

	result, err := f.svc.CompleteSession(ctx, started.Session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 100, result.Percentage, "only recorded answers are graded")

	_, err = f.svc.CompleteSession(ctx, started.Session.SessionID)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeSessionCompleted))
}

func TestCompleteSession_Repeat_UsesReviewSchedule(t *testing.T) {
	f := newGameServiceFixture()
	existing := &models.LevelCompletion{
		KidID:        "kid-1",
		Domain:       models.DomainMathematics,
		LevelNumber:  1,
		StarsEarned:  3,
		Quality:      3,
		Repetitions:  1,
		IntervalDays: 1,
		EaseFactor:   2.5,
		NextReviewAt: fixedNow.Add(-time.Hour),
	}
	f.completionRepo.On("Get", mock.Anything, "kid-1", models.DomainMathematics, 1).Return(existing, nil)
	var upserted models.LevelCompletion
	f.completionRepo.On("Upsert", mock.Anything, mock.AnythingOfType("models.LevelCompletion")).
		Run(func(args mock.Arguments) {
			upserted = args.Get(1).(models.LevelCompletion)
		}).Return(nil)
	f.progressRepo.On("SetLevelStars", mock.Anything, "kid-1", models.DomainMathematics, 1, 5).Return(nil)
	f.progressRepo.On("Get", mock.Anything, "kid-1", models.DomainMathematics).Return(nil, nil)
	f.progressRepo.On("ListLevelStars", mock.Anything, "kid-1", models.DomainMathematics).
		Return([]models.LevelStars{{LevelNumber: 1, Stars: 5}}, nil)
	f.progressRepo.On("Upsert", mock.Anything, mock.AnythingOfType("models.KidProgress")).Return(nil)
	f.awardRepo.On("Insert", mock.Anything, mock.AnythingOfType("models.LevelAward")).Return(nil)
	f.jobQueue.On("EnqueueAwardSync", mock.AnythingOfType("models.LevelAward")).Return(nil)

	ctx := context.Background()
	started, err := f.svc.StartSession(ctx, "kid-1", models.DomainMathematics, 1, models.LocaleEnglish)
	require.NoError(t, err)

	for _, q := range started.Questions {
		_, err = f.svc.SubmitAnswer(ctx, started.Session.SessionID, q.Expected(), 2)
		require.NoError(t, err)
	}

	// Second successful review of a 1-day interval jumps to 3 days.
	assert.Equal(t, 2, upserted.Repetitions)
	assert.Equal(t, 3, upserted.IntervalDays)
	assert.Equal(t, 5, upserted.StarsEarned)
	assert.Equal(t, fixedNow.Add(3*24*time.Hour), upserted.NextReviewAt)
}

func TestResetLevelLock(t *testing.T) {
	f := newGameServiceFixture()
	f.completionRepo.On("Get", mock.Anything, "kid-1", models.DomainLogical, 2).Return(&models.LevelCompletion{
		KidID:        "kid-1",
		Domain:       models.DomainLogical,
		LevelNumber:  2,
		IntervalDays: 6,
		EaseFactor:   2.6,
		NextReviewAt: fixedNow.Add(48 * time.Hour),
	}, nil)
	var upserted models.LevelCompletion
	f.completionRepo.On("Upsert", mock.Anything, mock.AnythingOfType("models.LevelCompletion")).
		Run(func(args mock.Arguments) {
			upserted = args.Get(1).(models.LevelCompletion)
		}).Return(nil)

	err := f.svc.ResetLevelLock(context.Background(), "kid-1", models.DomainLogical, 2)
	require.NoError(t, err)
	assert.Equal(t, fixedNow, upserted.NextReviewAt)
	assert.Equal(t, 6, upserted.IntervalDays, "reset keeps the schedule state")
	assert.InDelta(t, 2.6, upserted.EaseFactor, 1e-9)
}

func TestResetLevelLock_NoRecord(t *testing.T) {
	f := newGameServiceFixture()
	f.completionRepo.On("Get", mock.Anything, "kid-1", models.DomainLogical, 9).Return(nil, nil)

	err := f.svc.ResetLevelLock(context.Background(), "kid-1", models.DomainLogical, 9)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeNotFound))
}

func TestLockStatus(t *testing.T) {
	f := newGameServiceFixture()
	f.completionRepo.On("Get", mock.Anything, "kid-1", models.DomainLanguage, 4).Return(&models.LevelCompletion{
		NextReviewAt: fixedNow.Add(26*time.Hour + 30*time.Minute),
	}, nil)

	lock, err := f.svc.LockStatus(context.Background(), "kid-1", models.DomainLanguage, 4)
	require.NoError(t, err)
	assert.True(t, lock.IsLocked)
	assert.Equal(t, 1, lock.DaysUntilUnlock)
	assert.Equal(t, 2, lock.HoursUntilUnlock)
	assert.Equal(t, 30, lock.MinutesUntilUnlock)
}
