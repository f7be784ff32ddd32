package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/lease-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/lease-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/lease-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/lease-processor/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// PartyRepository implements collaborator.IdentityDirectory over the parties table
type PartyRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewPartyRepository creates a new PartyRepository instance
func NewPartyRepository(db *gorm.DB, logger coreport.Logger) *PartyRepository {
	return &PartyRepository{
		db:     db,
		logger: logger,
	}
}

// ResolveParty returns the identity record for a party
func (r *PartyRepository) ResolveParty(ctx context.Context, partyID uint64) (*entity.Party, error) {
	var partyModel model.Party
	result := r.db.WithContext(ctx).Where("id = ?", partyID).First(&partyModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrPartyNotFound
		}
		r.logger.Error("Failed to resolve party", map[string]any{
			"party_id": partyID,
			"error":    result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return &entity.Party{
		ID:       partyModel.ID,
		FullName: partyModel.FullName,
		Email:    partyModel.Email,
		Phone:    partyModel.Phone,
	}, nil
}
