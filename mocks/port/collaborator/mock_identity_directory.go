package collaborator

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/lease-processor/internal/domain/entity"
)

// MockIdentityDirectory is a mock implementation of collaborator.IdentityDirectory
type MockIdentityDirectory struct {
	mock.Mock
}

func (m *MockIdentityDirectory) ResolveParty(ctx context.Context, partyID uint64) (*entity.Party, error) {
	args := m.Called(ctx, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Party), args.Error(1)
}
