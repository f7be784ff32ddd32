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

// LeaseTransactionRepository implements persistence.TransactionRepository using GORM
type LeaseTransactionRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewLeaseTransactionRepository creates a new LeaseTransactionRepository instance
func NewLeaseTransactionRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *LeaseTransactionRepository {
	return &LeaseTransactionRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a lease transaction entity to a database model
func (r *LeaseTransactionRepository) entityToModel(transaction *entity.LeaseTransaction) model.LeaseTransaction {
	return model.LeaseTransaction{
		ID:                     transaction.ID,
		TenantID:               transaction.TenantID,
		OwnerID:                transaction.OwnerID,
		PropertyID:             transaction.PropertyID,
		Status:                 string(transaction.Status),
		TenantSignedAt:         transaction.TenantSignedAt,
		OwnerSignedAt:          transaction.OwnerSignedAt,
		TerminationEffectiveAt: transaction.TerminationEffectiveAt,
		Version:                transaction.Version,
		CreatedAt:              transaction.CreatedAt,
		UpdatedAt:              transaction.UpdatedAt,
	}
}

// modelToEntity converts a database model to a lease transaction entity
func (r *LeaseTransactionRepository) modelToEntity(m model.LeaseTransaction) *entity.LeaseTransaction {
	return &entity.LeaseTransaction{
		ID:                     m.ID,
		TenantID:               m.TenantID,
		OwnerID:                m.OwnerID,
		PropertyID:             m.PropertyID,
		Status:                 entity.Status(m.Status),
		TenantSignedAt:         m.TenantSignedAt,
		OwnerSignedAt:          m.OwnerSignedAt,
		TerminationEffectiveAt: m.TerminationEffectiveAt,
		Version:                m.Version,
		CreatedAt:              m.CreatedAt,
		UpdatedAt:              m.UpdatedAt,
	}
}

// Create saves a new lease transaction
func (r *LeaseTransactionRepository) Create(ctx context.Context, transaction *entity.LeaseTransaction) error {
	r.logger.Debug("Creating lease transaction", map[string]any{
		"transaction_id": transaction.ID,
		"tenant_id":      transaction.TenantID,
		"property_id":    transaction.PropertyID,
	})

	transactionModel := r.entityToModel(transaction)

	result := r.db.WithContext(ctx).Create(&transactionModel)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Warn("Duplicate lease transaction detected", map[string]any{
				"transaction_id": transaction.ID,
			})
			return errs.ErrInvalidRequest
		}

		r.logger.Error("Failed to create lease transaction", map[string]any{
			"transaction_id": transaction.ID,
			"error":          result.Error.Error(),
			"class":          string(r.errorClassifier.Classify(result.Error)),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	r.logger.Info("Lease transaction created successfully", map[string]any{
		"transaction_id": transaction.ID,
		"status":         transaction.Status,
	})
	return nil
}

// GetByID retrieves a lease transaction by its identifier
func (r *LeaseTransactionRepository) GetByID(ctx context.Context, id string) (*entity.LeaseTransaction, error) {
	var transactionModel model.LeaseTransaction
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&transactionModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrTransactionNotFound
		}
		r.logger.Error("Failed to get lease transaction", map[string]any{
			"transaction_id": id,
			"error":          result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return r.modelToEntity(transactionModel), nil
}

// Update persists the transaction guarded by its optimistic version. The
// version the entity was read at must still be stored; the write bumps it.
func (r *LeaseTransactionRepository) Update(ctx context.Context, transaction *entity.LeaseTransaction) error {
	r.logger.Debug("Updating lease transaction", map[string]any{
		"transaction_id": transaction.ID,
		"status":         transaction.Status,
		"version":        transaction.Version,
	})

	now := r.timeProvider.Now()

	result := r.db.WithContext(ctx).Model(&model.LeaseTransaction{}).
		Where("id = ? AND version = ?", transaction.ID, transaction.Version).
		Updates(map[string]interface{}{
			"status":                   string(transaction.Status),
			"tenant_signed_at":         transaction.TenantSignedAt,
			"owner_signed_at":          transaction.OwnerSignedAt,
			"termination_effective_at": transaction.TerminationEffectiveAt,
			"version":                  gorm.Expr("version + 1"),
			"updated_at":               now,
		})

	if result.Error != nil {
		r.logger.Error("Failed to update lease transaction", map[string]any{
			"transaction_id": transaction.ID,
			"error":          result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	if result.RowsAffected == 0 {
		// Either the record is gone or another writer got there first
		var count int64
		if err := r.db.WithContext(ctx).Model(&model.LeaseTransaction{}).
			Where("id = ?", transaction.ID).Count(&count).Error; err != nil {
			return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
		}
		if count == 0 {
			return errs.ErrTransactionNotFound
		}
		r.logger.Warn("Stale version on lease transaction update", map[string]any{
			"transaction_id": transaction.ID,
			"version":        transaction.Version,
		})
		return errs.ErrInvalidTransition
	}

	transaction.Version++
	transaction.UpdatedAt = now

	r.logger.Debug("Lease transaction updated successfully", map[string]any{
		"transaction_id": transaction.ID,
		"status":         transaction.Status,
	})
	return nil
}

// ActiveExistsForProperty checks whether the property already has an active lease
func (r *LeaseTransactionRepository) ActiveExistsForProperty(ctx context.Context, propertyID uint64) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.LeaseTransaction{}).
		Where("property_id = ? AND status = ?", propertyID, string(entity.StatusActive)).
		Count(&count)

	if result.Error != nil {
		r.logger.Error("Failed to check active lease for property", map[string]any{
			"property_id": propertyID,
			"error":       result.Error.Error(),
		})
		return false, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return count > 0, nil
}

// ListByTenant returns all transactions where the party is the tenant, newest first
func (r *LeaseTransactionRepository) ListByTenant(ctx context.Context, tenantID uint64) ([]*entity.LeaseTransaction, error) {
	var models []model.LeaseTransaction
	result := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at desc").
		Find(&models)

	if result.Error != nil {
		r.logger.Error("Failed to list lease transactions for tenant", map[string]any{
			"tenant_id": tenantID,
			"error":     result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	transactions := make([]*entity.LeaseTransaction, 0, len(models))
	for _, m := range models {
		transactions = append(transactions, r.modelToEntity(m))
	}
	return transactions, nil
}
