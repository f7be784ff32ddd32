package persistence

import (
	"context"
)

// UnitOfWork coordinates writes that must land atomically: a status change
// plus its occupancy flip, or an entry settlement plus the promotion of the
// following entry.
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetTransactionRepository returns a transaction repository bound to the current transaction
	GetTransactionRepository(ctx context.Context) TransactionRepository

	// GetSnapshotRepository returns a snapshot repository bound to the current transaction
	GetSnapshotRepository(ctx context.Context) SnapshotRepository

	// GetScheduleRepository returns a schedule repository bound to the current transaction
	GetScheduleRepository(ctx context.Context) ScheduleRepository

	// GetPropertyRepository returns a property repository bound to the current transaction
	GetPropertyRepository(ctx context.Context) PropertyRepository
}
