package rewards

import "context"

// ClientInterface defines the interface for rewards service operations.
// This interface enables testability by allowing mock implementations.
type ClientInterface interface {
	AwardPoints(ctx context.Context, kidID string, points int, reason string) (int, error)
	Balance(ctx context.Context, kidID string) (int, error)
}

// Ensure Client implements the interface
var _ ClientInterface = (*Client)(nil)
