package jobs

import "github.com/Sumantkumarraj20/KLD/internal/models"

// JobQueue provides an abstraction for enqueueing background jobs
type JobQueue interface {
	EnqueueAwardSync(award models.LevelAward) error
}
