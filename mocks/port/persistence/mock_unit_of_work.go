package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/lease-processor/internal/domain/port/persistence"
)

// MockUnitOfWork is a mock implementation of persistence.UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(context.Context), args.Error(1)
}

func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) GetTransactionRepository(ctx context.Context) persistence.TransactionRepository {
	args := m.Called(ctx)
	return args.Get(0).(persistence.TransactionRepository)
}

func (m *MockUnitOfWork) GetSnapshotRepository(ctx context.Context) persistence.SnapshotRepository {
	args := m.Called(ctx)
	return args.Get(0).(persistence.SnapshotRepository)
}

func (m *MockUnitOfWork) GetScheduleRepository(ctx context.Context) persistence.ScheduleRepository {
	args := m.Called(ctx)
	return args.Get(0).(persistence.ScheduleRepository)
}

func (m *MockUnitOfWork) GetPropertyRepository(ctx context.Context) persistence.PropertyRepository {
	args := m.Called(ctx)
	return args.Get(0).(persistence.PropertyRepository)
}
