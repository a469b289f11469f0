package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Sumantkumarraj20/KLD/internal/models"
)

// MockProgressRepository is a mock implementation of repository.ProgressRepository
type MockProgressRepository struct {
	mock.Mock
}

func (m *MockProgressRepository) Get(ctx context.Context, kidID string, domain models.Domain) (*models.KidProgress, error) {
	args := m.Called(ctx, kidID, domain)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.KidProgress), args.Error(1)
}

func (m *MockProgressRepository) Upsert(ctx context.Context, progress models.KidProgress) error {
	args := m.Called(ctx, progress)
	return args.Error(0)
}

func (m *MockProgressRepository) GetLevelStars(ctx context.Context, kidID string, domain models.Domain, levelNumber int) (int, error) {
	args := m.Called(ctx, kidID, domain, levelNumber)
	return args.Int(0), args.Error(1)
}

func (m *MockProgressRepository) SetLevelStars(ctx context.Context, kidID string, domain models.Domain, levelNumber, stars int) error {
	args := m.Called(ctx, kidID, domain, levelNumber, stars)
	return args.Error(0)
}

func (m *MockProgressRepository) ListLevelStars(ctx context.Context, kidID string, domain models.Domain) ([]models.LevelStars, error) {
	args := m.Called(ctx, kidID, domain)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LevelStars), args.Error(1)
}
