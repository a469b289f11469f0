package worker

import (
	"context"
	"time"

	"github.com/Sumantkumarraj20/KLD/internal/logger"
	"github.com/Sumantkumarraj20/KLD/internal/models"
	"github.com/Sumantkumarraj20/KLD/internal/rewards"
)

// SyncAwardJob pushes a granted award to the external rewards service.
// The award is already persisted locally, so a sync failure only means
// the kid's shared balance lags behind.
type SyncAwardJob struct {
	RewardsClient rewards.ClientInterface
	Award         models.LevelAward
	MaxAttempts   int
	RetryDelay    time.Duration
}

func (j *SyncAwardJob) Name() string { return "sync_award" }

func (j *SyncAwardJob) Run(ctx context.Context) error {
	log := logger.FromContext(ctx).WithFields(map[string]any{
		"kid_id":   j.Award.KidID,
		"award_id": j.Award.AwardID,
	})

	attempts := j.MaxAttempts
	if attempts <= 0 {
		attempts = 3
	}
	delay := j.RetryDelay
	if delay <= 0 {
		delay = 2 * time.Second
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		balance, err := j.RewardsClient.AwardPoints(ctx, j.Award.KidID, j.Award.PointsAwarded, j.Award.Reason)
		if err == nil {
			log.Info("award synced on attempt %d, balance now %d", attempt, balance)
			return nil
		}
		lastErr = err
		log.Warn("award sync attempt %d/%d failed: %v", attempt, attempts, err)

		if attempt == attempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay * time.Duration(attempt)):
		}
	}
	return lastErr
}
