package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/lease-processor/internal/domain/entity"
)

// MockScheduleRepository is a mock implementation of persistence.ScheduleRepository
type MockScheduleRepository struct {
	mock.Mock
}

func (m *MockScheduleRepository) CreateAll(ctx context.Context, entries []*entity.ScheduleEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockScheduleRepository) GetByTransactionID(ctx context.Context, transactionID string) ([]*entity.ScheduleEntry, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ScheduleEntry), args.Error(1)
}

func (m *MockScheduleRepository) UpdateEntry(ctx context.Context, entry *entity.ScheduleEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
