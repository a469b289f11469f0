package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockRewardsClient is a mock implementation of rewards.ClientInterface
type MockRewardsClient struct {
	mock.Mock
}

func (m *MockRewardsClient) AwardPoints(ctx context.Context, kidID string, points int, reason string) (int, error) {
	args := m.Called(ctx, kidID, points, reason)
	return args.Int(0), args.Error(1)
}

func (m *MockRewardsClient) Balance(ctx context.Context, kidID string) (int, error) {
	args := m.Called(ctx, kidID)
	return args.Int(0), args.Error(1)
}
