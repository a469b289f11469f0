package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Sumantkumarraj20/KLD/internal/models"
)

// MockAwardRepository is a mock implementation of repository.AwardRepository
type MockAwardRepository struct {
	mock.Mock
}

func (m *MockAwardRepository) Insert(ctx context.Context, award models.LevelAward) error {
	args := m.Called(ctx, award)
	return args.Error(0)
}

func (m *MockAwardRepository) List(ctx context.Context, filter models.AwardFilter) ([]models.LevelAward, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LevelAward), args.Error(1)
}

func (m *MockAwardRepository) Count(ctx context.Context, filter models.AwardFilter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}

func (m *MockAwardRepository) DomainStars(ctx context.Context, kidID string) (map[models.Domain]int, error) {
	args := m.Called(ctx, kidID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[models.Domain]int), args.Error(1)
}
