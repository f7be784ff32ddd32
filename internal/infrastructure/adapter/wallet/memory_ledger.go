package wallet

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/lease-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/lease-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/lease-processor/internal/domain/port/core"
)

// MemoryLedger is an in-process wallet ledger used in development and tests.
// Balances are held in cents; each debit/credit returns a fresh confirmation
// id the way the external funds-holding service would.
type MemoryLedger struct {
	mu       sync.Mutex
	balances map[uint64]int64
	logger   coreport.Logger
}

// NewMemoryLedger creates a ledger with no accounts
func NewMemoryLedger(logger coreport.Logger) *MemoryLedger {
	return &MemoryLedger{
		balances: make(map[uint64]int64),
		logger:   logger,
	}
}

// Fund sets an account balance directly. Only for seeding development data.
func (l *MemoryLedger) Fund(accountID uint64, amount string) error {
	cents, err := entity.ValidateAndConvertAmount(amount)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances[accountID] = cents
	return nil
}

// Balance returns the current balance of an account as a decimal string
func (l *MemoryLedger) Balance(accountID uint64) string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return entity.AmountInCentsToString(l.balances[accountID])
}

// Debit withdraws the amount from the account and returns a confirmation id
func (l *MemoryLedger) Debit(ctx context.Context, accountID uint64, amount string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %s", errs.ErrLedgerFailure, err.Error())
	}

	cents, err := entity.ValidateAndConvertAmount(amount)
	if err != nil {
		return "", fmt.Errorf("%w: invalid debit amount %q", errs.ErrLedgerFailure, amount)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	balance := l.balances[accountID]
	if balance < cents {
		l.logger.Warn("Insufficient funds for debit", map[string]any{
			"account_id": accountID,
			"amount":     amount,
			"balance":    entity.AmountInCentsToString(balance),
		})
		return "", fmt.Errorf("%w: insufficient funds on account %d", errs.ErrLedgerFailure, accountID)
	}

	l.balances[accountID] = balance - cents
	confirmationID := uuid.New().String()

	l.logger.Info("Ledger debit confirmed", map[string]any{
		"account_id":      accountID,
		"amount":          amount,
		"confirmation_id": confirmationID,
	})
	return confirmationID, nil
}

// Credit deposits the amount into the account and returns a confirmation id
func (l *MemoryLedger) Credit(ctx context.Context, accountID uint64, amount string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %s", errs.ErrLedgerFailure, err.Error())
	}

	cents, err := entity.ValidateAndConvertAmount(amount)
	if err != nil {
		return "", fmt.Errorf("%w: invalid credit amount %q", errs.ErrLedgerFailure, amount)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.balances[accountID] += cents
	confirmationID := uuid.New().String()

	l.logger.Info("Ledger credit confirmed", map[string]any{
		"account_id":      accountID,
		"amount":          amount,
		"confirmation_id": confirmationID,
	})
	return confirmationID, nil
}
