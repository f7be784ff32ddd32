package persistence

import (
	"context"

	"github.com/amirhossein-jamali/lease-processor/internal/domain/entity"
)

// ScheduleRepository persists the ordered set of schedule entries for a
// transaction. Entries are created once when the transaction enters
// AwaitingPayment and individually updated as payments settle; never deleted.
type ScheduleRepository interface {
	// CreateAll saves the full generated schedule in order
	//
	// Possible errors:
	// - ErrDatabaseConnection: If the document store is unreachable
	CreateAll(ctx context.Context, entries []*entity.ScheduleEntry) error

	// GetByTransactionID retrieves the schedule ordered by sequence index
	//
	// Possible errors:
	// - ErrScheduleNotFound: If the transaction has no generated schedule
	// - ErrDatabaseConnection: If the document store is unreachable
	GetByTransactionID(ctx context.Context, transactionID string) ([]*entity.ScheduleEntry, error)

	// UpdateEntry persists the settlement fields of a single entry
	//
	// Possible errors:
	// - ErrScheduleNotFound: If the entry doesn't exist
	// - ErrDatabaseConnection: If the document store is unreachable
	UpdateEntry(ctx context.Context, entry *entity.ScheduleEntry) error
}
