package persistence

import (
	"context"
)

// PropertyRecord is the minimal property view the engine needs: identity,
// address for snapshot freezing, and the occupancy flag flipped on
// activation/termination.
type PropertyRecord struct {
	ID       uint64
	OwnerID  uint64
	Address  string
	Occupied bool
}

// PropertyRepository manages the occupancy side effect of lease transitions
type PropertyRepository interface {
	// GetByID retrieves a property
	//
	// Possible errors:
	// - ErrPropertyNotFound: If the property doesn't exist
	// - ErrDatabaseConnection: If the document store is unreachable
	GetByID(ctx context.Context, id uint64) (*PropertyRecord, error)

	// MarkOccupied flips the occupancy flag atomically; the write is guarded
	// by `occupied = false` so two concurrent activations cannot both win.
	//
	// Possible errors:
	// - ErrPropertyAlreadyOccupied: If the guard fails
	// - ErrPropertyNotFound: If the property doesn't exist
	// - ErrDatabaseConnection: If the document store is unreachable
	MarkOccupied(ctx context.Context, id uint64) error

	// MarkVacant clears the occupancy flag on termination/completion
	//
	// Possible errors:
	// - ErrPropertyNotFound: If the property doesn't exist
	// - ErrDatabaseConnection: If the document store is unreachable
	MarkVacant(ctx context.Context, id uint64) error
}
