package collaborator

import (
	"context"
)

// WalletLedger is the minimal balance-debit/credit contract the engine
// requires from the external funds-holding service. Both operations are
// atomic on the ledger side and return a stable confirmation id usable as a
// PaymentEvent confirmation. The engine never computes or stores balances.
type WalletLedger interface {
	// Debit withdraws the amount from the account and returns a confirmation id
	//
	// Possible errors:
	// - ErrLedgerFailure: If the ledger cannot confirm the debit
	Debit(ctx context.Context, accountID uint64, amount string) (confirmationID string, err error)

	// Credit deposits the amount into the account and returns a confirmation id
	//
	// Possible errors:
	// - ErrLedgerFailure: If the ledger cannot confirm the credit
	Credit(ctx context.Context, accountID uint64, amount string) (confirmationID string, err error)
}
