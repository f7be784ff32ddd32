package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/lease-processor/internal/domain/port/persistence"
)

// MockPropertyRepository is a mock implementation of persistence.PropertyRepository
type MockPropertyRepository struct {
	mock.Mock
}

func (m *MockPropertyRepository) GetByID(ctx context.Context, id uint64) (*persistence.PropertyRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*persistence.PropertyRecord), args.Error(1)
}

func (m *MockPropertyRepository) MarkOccupied(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPropertyRepository) MarkVacant(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
