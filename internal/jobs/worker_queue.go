package jobs

import (
	"time"

	"github.com/Sumantkumarraj20/KLD/internal/models"
	"github.com/Sumantkumarraj20/KLD/internal/rewards"
	"github.com/Sumantkumarraj20/KLD/internal/worker"
)

// WorkerQueue implements JobQueue using a worker pool
type WorkerQueue struct {
	syncPool      *worker.Pool
	rewardsClient rewards.ClientInterface
	maxAttempts   int
	retryDelay    time.Duration
}

// NewWorkerQueue creates a new WorkerQueue implementation
func NewWorkerQueue(syncPool *worker.Pool, rewardsClient rewards.ClientInterface) JobQueue {
	return &WorkerQueue{
		syncPool:      syncPool,
		rewardsClient: rewardsClient,
		maxAttempts:   3,
		retryDelay:    2 * time.Second,
	}
}

func (q *WorkerQueue) EnqueueAwardSync(award models.LevelAward) error {
	return q.syncPool.Submit(&worker.SyncAwardJob{
		RewardsClient: q.rewardsClient,
		Award:         award,
		MaxAttempts:   q.maxAttempts,
		RetryDelay:    q.retryDelay,
	})
}
