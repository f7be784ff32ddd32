package repository

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/lease-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/lease-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/lease-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/lease-processor/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// ScheduleRepository implements persistence.ScheduleRepository using GORM
type ScheduleRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewScheduleRepository creates a new ScheduleRepository instance
func NewScheduleRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *ScheduleRepository {
	return &ScheduleRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *ScheduleRepository) entityToModel(entry *entity.ScheduleEntry) model.ScheduleEntry {
	return model.ScheduleEntry{
		TransactionID:       entry.TransactionID,
		SequenceIndex:       entry.SequenceIndex,
		DueDate:             entry.DueDate,
		ExpectedAmount:      entry.ExpectedAmount,
		ExpectedAmountCents: entry.ExpectedAmountCents,
		Status:              string(entry.Status),
		PaidAt:              entry.PaidAt,
		PaidAmount:          entry.PaidAmount,
		ConfirmationID:      entry.ConfirmationID,
	}
}

func (r *ScheduleRepository) modelToEntity(m model.ScheduleEntry) *entity.ScheduleEntry {
	return &entity.ScheduleEntry{
		TransactionID:       m.TransactionID,
		SequenceIndex:       m.SequenceIndex,
		DueDate:             m.DueDate,
		ExpectedAmount:      m.ExpectedAmount,
		ExpectedAmountCents: m.ExpectedAmountCents,
		Status:              entity.EntryStatus(m.Status),
		PaidAt:              m.PaidAt,
		PaidAmount:          m.PaidAmount,
		ConfirmationID:      m.ConfirmationID,
	}
}

// CreateAll saves the full generated schedule in order
func (r *ScheduleRepository) CreateAll(ctx context.Context, entries []*entity.ScheduleEntry) error {
	if len(entries) == 0 {
		return nil
	}

	r.logger.Debug("Creating payment schedule", map[string]any{
		"transaction_id": entries[0].TransactionID,
		"entry_count":    len(entries),
	})

	now := r.timeProvider.Now()
	models := make([]model.ScheduleEntry, 0, len(entries))
	for _, entry := range entries {
		entryModel := r.entityToModel(entry)
		entryModel.CreatedAt = now
		entryModel.UpdatedAt = now
		models = append(models, entryModel)
	}

	result := r.db.WithContext(ctx).Create(&models)
	if result.Error != nil {
		r.logger.Error("Failed to create payment schedule", map[string]any{
			"transaction_id": entries[0].TransactionID,
			"error":          result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	r.logger.Info("Payment schedule created successfully", map[string]any{
		"transaction_id": entries[0].TransactionID,
		"entry_count":    len(entries),
	})
	return nil
}

// GetByTransactionID retrieves the schedule ordered by sequence index
func (r *ScheduleRepository) GetByTransactionID(ctx context.Context, transactionID string) ([]*entity.ScheduleEntry, error) {
	var models []model.ScheduleEntry
	result := r.db.WithContext(ctx).
		Where("transaction_id = ?", transactionID).
		Order("sequence_index asc").
		Find(&models)

	if result.Error != nil {
		r.logger.Error("Failed to get payment schedule", map[string]any{
			"transaction_id": transactionID,
			"error":          result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	if len(models) == 0 {
		return nil, errs.ErrScheduleNotFound
	}

	entries := make([]*entity.ScheduleEntry, 0, len(models))
	for _, m := range models {
		entries = append(entries, r.modelToEntity(m))
	}
	return entries, nil
}

// UpdateEntry persists the settlement fields of a single entry
func (r *ScheduleRepository) UpdateEntry(ctx context.Context, entry *entity.ScheduleEntry) error {
	r.logger.Debug("Updating schedule entry", map[string]any{
		"transaction_id": entry.TransactionID,
		"sequence_index": entry.SequenceIndex,
		"status":         entry.Status,
	})

	result := r.db.WithContext(ctx).Model(&model.ScheduleEntry{}).
		Where("transaction_id = ? AND sequence_index = ?", entry.TransactionID, entry.SequenceIndex).
		Updates(map[string]interface{}{
			"status":          string(entry.Status),
			"paid_at":         entry.PaidAt,
			"paid_amount":     entry.PaidAmount,
			"confirmation_id": entry.ConfirmationID,
			"updated_at":      r.timeProvider.Now(),
		})

	if result.Error != nil {
		r.logger.Error("Failed to update schedule entry", map[string]any{
			"transaction_id": entry.TransactionID,
			"sequence_index": entry.SequenceIndex,
			"error":          result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	if result.RowsAffected == 0 {
		return errs.ErrScheduleNotFound
	}

	return nil
}
