package persistence

import (
	"context"

	"github.com/amirhossein-jamali/lease-processor/internal/domain/entity"
)

// TransactionRepository defines essential methods to interact with lease
// transaction records
type TransactionRepository interface {
	// Create saves a new lease transaction
	//
	// Possible errors:
	// - ErrDatabaseConnection: If the document store is unreachable
	Create(ctx context.Context, transaction *entity.LeaseTransaction) error

	// GetByID retrieves a lease transaction by its identifier
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no transaction with the given ID exists
	// - ErrDatabaseConnection: If the document store is unreachable
	GetByID(ctx context.Context, id string) (*entity.LeaseTransaction, error)

	// Update persists the transaction guarded by its optimistic version.
	// The write only succeeds when the stored version equals the version the
	// entity was read at; the version is then incremented. This is what
	// serializes two concurrent Decide/Sign/RecordPayment calls on the same
	// transaction.
	//
	// Possible errors:
	// - ErrInvalidTransition: If the version check fails (stale caller view)
	// - ErrTransactionNotFound: If the transaction doesn't exist
	// - ErrDatabaseConnection: If the document store is unreachable
	Update(ctx context.Context, transaction *entity.LeaseTransaction) error

	// ActiveExistsForProperty checks the single-Active-per-property invariant
	//
	// Possible errors:
	// - ErrDatabaseConnection: If the document store is unreachable
	ActiveExistsForProperty(ctx context.Context, propertyID uint64) (bool, error)

	// ListByTenant returns all transactions where the party is the tenant,
	// newest first (history is retained for terminal states)
	ListByTenant(ctx context.Context, tenantID uint64) ([]*entity.LeaseTransaction, error)
}
