package persistence

import (
	"context"
	"time"
)

// LeaseLockRepository serializes mutating operations per lease transaction.
// Transition and ApplyPayment must run as single atomic read-modify-writes;
// the lock keeps two concurrent writers from interleaving. Reads never take
// the lock.
type LeaseLockRepository interface {
	// AcquireLock attempts to acquire a lock on the transaction for a
	// mutating operation. The lock expires after the given duration so a
	// crashed holder cannot wedge the record.
	//
	// Possible errors:
	// - ErrTransactionLocked: If another operation holds the lock
	// - ErrDatabaseConnection: If the document store is unreachable
	AcquireLock(ctx context.Context, transactionID string, duration time.Duration) error

	// ReleaseLock releases a previously acquired lock
	//
	// Possible errors:
	// - ErrDatabaseConnection: If the document store is unreachable
	ReleaseLock(ctx context.Context, transactionID string) error
}
