package repository

import (
	"context"
	"errors"
	"fmt"

	errs "github.com/amirhossein-jamali/lease-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/lease-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/lease-processor/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/lease-processor/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// PropertyRepository implements persistence.PropertyRepository using GORM
type PropertyRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewPropertyRepository creates a new PropertyRepository instance
func NewPropertyRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *PropertyRepository {
	return &PropertyRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetByID retrieves a property
func (r *PropertyRepository) GetByID(ctx context.Context, id uint64) (*persistence.PropertyRecord, error) {
	var propertyModel model.Property
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&propertyModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrPropertyNotFound
		}
		r.logger.Error("Failed to get property", map[string]any{
			"property_id": id,
			"error":       result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return &persistence.PropertyRecord{
		ID:       propertyModel.ID,
		OwnerID:  propertyModel.OwnerID,
		Address:  propertyModel.Address,
		Occupied: propertyModel.Occupied,
	}, nil
}

// MarkOccupied flips the occupancy flag. The write is guarded by
// `occupied = false` so two concurrent activations cannot both win.
func (r *PropertyRepository) MarkOccupied(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Model(&model.Property{}).
		Where("id = ? AND occupied = ?", id, false).
		Updates(map[string]interface{}{
			"occupied":   true,
			"updated_at": r.timeProvider.Now(),
		})

	if result.Error != nil {
		r.logger.Error("Failed to mark property occupied", map[string]any{
			"property_id": id,
			"error":       result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&model.Property{}).
			Where("id = ?", id).Count(&count).Error; err != nil {
			return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
		}
		if count == 0 {
			return errs.ErrPropertyNotFound
		}
		r.logger.Warn("Property is already occupied", map[string]any{
			"property_id": id,
		})
		return errs.ErrPropertyAlreadyOccupied
	}

	r.logger.Info("Property marked occupied", map[string]any{"property_id": id})
	return nil
}

// MarkVacant clears the occupancy flag on termination or completion
func (r *PropertyRepository) MarkVacant(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Model(&model.Property{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"occupied":   false,
			"updated_at": r.timeProvider.Now(),
		})

	if result.Error != nil {
		r.logger.Error("Failed to mark property vacant", map[string]any{
			"property_id": id,
			"error":       result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	if result.RowsAffected == 0 {
		return errs.ErrPropertyNotFound
	}

	r.logger.Info("Property marked vacant", map[string]any{"property_id": id})
	return nil
}
