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

// SnapshotRepository implements persistence.SnapshotRepository using GORM.
// Snapshots are insert-only; there is deliberately no update method.
type SnapshotRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewSnapshotRepository creates a new SnapshotRepository instance
func NewSnapshotRepository(db *gorm.DB, logger coreport.Logger) *SnapshotRepository {
	return &SnapshotRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *SnapshotRepository) entityToModel(snapshot *entity.ContractSnapshot) model.ContractSnapshot {
	return model.ContractSnapshot{
		TransactionID:             snapshot.TransactionID,
		TenantID:                  snapshot.TenantID,
		TenantFullName:            snapshot.TenantFullName,
		TenantEmail:               snapshot.TenantEmail,
		TenantPhone:               snapshot.TenantPhone,
		OwnerID:                   snapshot.OwnerID,
		OwnerFullName:             snapshot.OwnerFullName,
		OwnerEmail:                snapshot.OwnerEmail,
		OwnerPhone:                snapshot.OwnerPhone,
		PropertyID:                snapshot.PropertyID,
		PropertyAddress:           snapshot.PropertyAddress,
		LeaseStart:                snapshot.LeaseStart,
		LeaseEnd:                  snapshot.LeaseEnd,
		DurationClass:             string(snapshot.DurationClass),
		RentAmount:                snapshot.RentAmount,
		RentAmountCents:           snapshot.RentAmountCents,
		RentDueDay:                snapshot.RentDueDay,
		SecurityDeposit:           snapshot.SecurityDeposit,
		SecurityDepositCents:      snapshot.SecurityDepositCents,
		SecurityDepositRefundDays: snapshot.SecurityDepositRefundDays,
		AdvancePayment:            snapshot.AdvancePayment,
		AdvancePaymentCents:       snapshot.AdvancePaymentCents,
		HouseRules:                snapshot.HouseRules,
		TerminationNoticeDays:     snapshot.TerminationNoticeDays,
		CreatedAt:                 snapshot.CreatedAt,
	}
}

func (r *SnapshotRepository) modelToEntity(m model.ContractSnapshot) *entity.ContractSnapshot {
	return &entity.ContractSnapshot{
		TransactionID:             m.TransactionID,
		TenantID:                  m.TenantID,
		TenantFullName:            m.TenantFullName,
		TenantEmail:               m.TenantEmail,
		TenantPhone:               m.TenantPhone,
		OwnerID:                   m.OwnerID,
		OwnerFullName:             m.OwnerFullName,
		OwnerEmail:                m.OwnerEmail,
		OwnerPhone:                m.OwnerPhone,
		PropertyID:                m.PropertyID,
		PropertyAddress:           m.PropertyAddress,
		LeaseStart:                m.LeaseStart,
		LeaseEnd:                  m.LeaseEnd,
		DurationClass:             entity.DurationClass(m.DurationClass),
		RentAmount:                m.RentAmount,
		RentAmountCents:           m.RentAmountCents,
		RentDueDay:                m.RentDueDay,
		SecurityDeposit:           m.SecurityDeposit,
		SecurityDepositCents:      m.SecurityDepositCents,
		SecurityDepositRefundDays: m.SecurityDepositRefundDays,
		AdvancePayment:            m.AdvancePayment,
		AdvancePaymentCents:       m.AdvancePaymentCents,
		HouseRules:                m.HouseRules,
		TerminationNoticeDays:     m.TerminationNoticeDays,
		CreatedAt:                 m.CreatedAt,
	}
}

// Create saves the frozen terms for a transaction
func (r *SnapshotRepository) Create(ctx context.Context, snapshot *entity.ContractSnapshot) error {
	r.logger.Debug("Creating contract snapshot", map[string]any{
		"transaction_id": snapshot.TransactionID,
		"property_id":    snapshot.PropertyID,
	})

	snapshotModel := r.entityToModel(snapshot)

	result := r.db.WithContext(ctx).Create(&snapshotModel)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Warn("Snapshot already exists for transaction", map[string]any{
				"transaction_id": snapshot.TransactionID,
			})
			return errs.ErrInvalidRequest
		}

		r.logger.Error("Failed to create contract snapshot", map[string]any{
			"transaction_id": snapshot.TransactionID,
			"error":          result.Error.Error(),
			"class":          string(r.errorClassifier.Classify(result.Error)),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	r.logger.Info("Contract snapshot created successfully", map[string]any{
		"transaction_id": snapshot.TransactionID,
	})
	return nil
}

// GetByTransactionID retrieves the snapshot frozen for a transaction
func (r *SnapshotRepository) GetByTransactionID(ctx context.Context, transactionID string) (*entity.ContractSnapshot, error) {
	var snapshotModel model.ContractSnapshot
	result := r.db.WithContext(ctx).Where("transaction_id = ?", transactionID).First(&snapshotModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrSnapshotNotFound
		}
		r.logger.Error("Failed to get contract snapshot", map[string]any{
			"transaction_id": transactionID,
			"error":          result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return r.modelToEntity(snapshotModel), nil
}
