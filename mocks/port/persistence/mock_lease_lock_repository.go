package persistence

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockLeaseLockRepository is a mock implementation of persistence.LeaseLockRepository
type MockLeaseLockRepository struct {
	mock.Mock
}

func (m *MockLeaseLockRepository) AcquireLock(ctx context.Context, transactionID string, duration time.Duration) error {
	args := m.Called(ctx, transactionID, duration)
	return args.Error(0)
}

func (m *MockLeaseLockRepository) ReleaseLock(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}
