package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Sumantkumarraj20/KLD/internal/models"
	"github.com/Sumantkumarraj20/KLD/internal/testutil/mocks"
)

func sampleAward() models.LevelAward {
	return models.LevelAward{
		AwardID:       "award-1",
		KidID:         "kid-1",
		Domain:        models.DomainMathematics,
		LevelNumber:   3,
		StarsEarned:   5,
		PointsAwarded: 40,
		Reason:        "Mathematics level 3 completed with 5 stars",
	}
}

func TestSyncAwardJob_SucceedsFirstAttempt(t *testing.T) {
	client := new(mocks.MockRewardsClient)
	client.On("AwardPoints", mock.Anything, "kid-1", 40, mock.Anything).Return(140, nil).Once()

	job := &SyncAwardJob{RewardsClient: client, Award: sampleAward()}
	require.NoError(t, job.Run(context.Background()))
	client.AssertExpectations(t)
}

func TestSyncAwardJob_RetriesThenSucceeds(t *testing.T) {
	client := new(mocks.MockRewardsClient)
	client.On("AwardPoints", mock.Anything, "kid-1", 40, mock.Anything).
		Return(0, errors.New("connection refused")).Twice()
	client.On("AwardPoints", mock.Anything, "kid-1", 40, mock.Anything).Return(140, nil).Once()

	job := &SyncAwardJob{
		RewardsClient: client,
		Award:         sampleAward(),
		MaxAttempts:   3,
		RetryDelay:    time.Millisecond,
	}
	require.NoError(t, job.Run(context.Background()))
	client.AssertNumberOfCalls(t, "AwardPoints", 3)
}

func TestSyncAwardJob_GivesUpAfterMaxAttempts(t *testing.T) {
	client := new(mocks.MockRewardsClient)
	client.On("AwardPoints", mock.Anything, "kid-1", 40, mock.Anything).
		Return(0, errors.New("connection refused"))

	job := &SyncAwardJob{
		RewardsClient: client,
		Award:         sampleAward(),
		MaxAttempts:   2,
		RetryDelay:    time.Millisecond,
	}
	err := job.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	client.AssertNumberOfCalls(t, "AwardPoints", 2)
}

func TestSyncAwardJob_StopsOnContextCancel(t *testing.T) {
	client := new(mocks.MockRewardsClient)
	client.On("AwardPoints", mock.Anything, "kid-1", 40, mock.Anything).
		Return(0, errors.New("connection refused"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	job := &SyncAwardJob{
		RewardsClient: client,
		Award:         sampleAward(),
		MaxAttempts:   5,
		RetryDelay:    time.Minute,
	}
	err := job.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	client.AssertNumberOfCalls(t, "AwardPoints", 1)
}

func TestPool_RunsSubmittedJobs(t *testing.T) {
	client := new(mocks.MockRewardsClient)
	done := make(chan struct{})
	client.On("AwardPoints", mock.Anything, "kid-1", 40, mock.Anything).
		Run(func(mock.Arguments) { close(done) }).Return(140, nil).Once()

	pool := NewPool(1, 4)
	pool.Start(context.Background())

	require.NoError(t, pool.Submit(&SyncAwardJob{RewardsClient: client, Award: sampleAward()}))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("job was not executed")
	}
	pool.Stop()
}

func TestPool_SubmitFailsWhenQueueFull(t *testing.T) {
	pool := NewPool(1, 1)
	// Pool not started, so the single queue slot fills up.
	require.NoError(t, pool.Submit(&SyncAwardJob{Award: sampleAward()}))
	err := pool.Submit(&SyncAwardJob{Award: sampleAward()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "queue full")
	assert.Equal(t, 1, pool.QueueSize())
}
