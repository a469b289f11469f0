package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Sumantkumarraj20/KLD/internal/models"
)

// MockCompletionRepository is a mock implementation of repository.CompletionRepository
type MockCompletionRepository struct {
	mock.Mock
}

func (m *MockCompletionRepository) Get(ctx context.Context, kidID string, domain models.Domain, levelNumber int) (*models.LevelCompletion, error) {
	args := m.Called(ctx, kidID, domain, levelNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LevelCompletion), args.Error(1)
}

func (m *MockCompletionRepository) Upsert(ctx context.Context, completion models.LevelCompletion) error {
	args := m.Called(ctx, completion)
	return args.Error(0)
}

func (m *MockCompletionRepository) ListForKid(ctx context.Context, kidID string, domain models.Domain) ([]models.LevelCompletion, error) {
	args := m.Called(ctx, kidID, domain)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LevelCompletion), args.Error(1)
}
