package collaborator

import (
	"context"

	"github.com/amirhossein-jamali/lease-processor/internal/domain/entity"
)

// IdentityDirectory resolves party display names and contact fields. It is
// consulted only by the snapshot builder at build time; after the terms are
// frozen no component reads it again.
type IdentityDirectory interface {
	// ResolveParty returns the identity record for a party
	//
	// Possible errors:
	// - ErrPartyNotFound: If the directory has no record for the id
	ResolveParty(ctx context.Context, partyID uint64) (*entity.Party, error)
}
