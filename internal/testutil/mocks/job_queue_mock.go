package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/Sumantkumarraj20/KLD/internal/models"
)

// MockJobQueue is a mock implementation of jobs.JobQueue
type MockJobQueue struct {
	mock.Mock
}

func (m *MockJobQueue) EnqueueAwardSync(award models.LevelAward) error {
	args := m.Called(award)
	return args.Error(0)
}
