package collaborator

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockWalletLedger is a mock implementation of collaborator.WalletLedger
type MockWalletLedger struct {
	mock.Mock
}

func (m *MockWalletLedger) Debit(ctx context.Context, accountID uint64, amount string) (string, error) {
	args := m.Called(ctx, accountID, amount)
	return args.String(0), args.Error(1)
}

func (m *MockWalletLedger) Credit(ctx context.Context, accountID uint64, amount string) (string, error) {
	args := m.Called(ctx, accountID, amount)
	return args.String(0), args.Error(1)
}
