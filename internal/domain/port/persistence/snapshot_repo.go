package persistence

import (
	"context"

	"github.com/amirhossein-jamali/lease-processor/internal/domain/entity"
)

// SnapshotRepository persists immutable contract snapshots. There is no
// update method: a snapshot is written exactly once per transaction and a
// correction requires a new snapshot under a new transaction.
type SnapshotRepository interface {
	// Create saves the frozen terms for a transaction
	//
	// Possible errors:
	// - ErrDatabaseConnection: If the document store is unreachable
	Create(ctx context.Context, snapshot *entity.ContractSnapshot) error

	// GetByTransactionID retrieves the snapshot frozen for a transaction
	//
	// Possible errors:
	// - ErrSnapshotNotFound: If the transaction has no snapshot yet
	// - ErrDatabaseConnection: If the document store is unreachable
	GetByTransactionID(ctx context.Context, transactionID string) (*entity.ContractSnapshot, error)
}
