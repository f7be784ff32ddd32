package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/lease-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/lease-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/lease-processor/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// LeaseLockRepository implements per-transaction locking using GORM
type LeaseLockRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewLeaseLockRepository creates a new LeaseLockRepository instance
func NewLeaseLockRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *LeaseLockRepository {
	return &LeaseLockRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// AcquireLock attempts to acquire a lock on the lease transaction for a
// mutating lifecycle operation. Uses upsert so insert and takeover of an
// expired lock are a single statement.
func (r *LeaseLockRepository) AcquireLock(ctx context.Context, transactionID string, duration time.Duration) error {
	r.logger.Debug("Attempting to acquire lease lock", map[string]any{
		"transaction_id": transactionID,
		"duration":       duration.String(),
	})

	now := r.timeProvider.Now()
	expiresAt := now.Add(duration)

	result := r.db.WithContext(ctx).Exec(`
		INSERT INTO lease_locks (transaction_id, locked_at, expires_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (transaction_id) DO UPDATE
		SET locked_at = EXCLUDED.locked_at,
		    expires_at = EXCLUDED.expires_at,
		    updated_at = EXCLUDED.updated_at
		WHERE lease_locks.expires_at <= ?`,
		transactionID, now, expiresAt, now, now,
		now,
	)

	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Warn("Lease transaction is already locked", map[string]any{
				"transaction_id": transactionID,
			})
			return errs.ErrTransactionLocked
		}

		if isContextError(result.Error) {
			r.logger.Warn("Context timeout acquiring lease lock", map[string]any{
				"transaction_id": transactionID,
				"error":          result.Error.Error(),
			})
			return fmt.Errorf("lock acquisition timeout: %w", result.Error)
		}

		r.logger.Error("Database error acquiring lease lock", map[string]any{
			"transaction_id": transactionID,
			"error":          result.Error.Error(),
			"class":          string(r.errorClassifier.Classify(result.Error)),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	// Zero rows means the conflict branch found an unexpired lock
	if result.RowsAffected == 0 {
		r.logger.Warn("Lease transaction is already locked", map[string]any{
			"transaction_id": transactionID,
		})
		return errs.ErrTransactionLocked
	}

	r.logger.Info("Lease lock acquired successfully", map[string]any{
		"transaction_id": transactionID,
		"locked_at":      now,
		"expires_at":     expiresAt,
	})
	return nil
}

// ReleaseLock releases a previously acquired lock
func (r *LeaseLockRepository) ReleaseLock(ctx context.Context, transactionID string) error {
	r.logger.Debug("Releasing lease lock", map[string]any{
		"transaction_id": transactionID,
	})

	result := r.db.WithContext(ctx).Where("transaction_id = ?", transactionID).Delete(&model.LeaseLock{})

	// A context timeout here is not critical; the lock expires on its own
	if result.Error != nil && isContextError(result.Error) {
		r.logger.Warn("Context timeout when releasing lease lock, lock will expire automatically", map[string]any{
			"transaction_id": transactionID,
			"error":          result.Error.Error(),
		})
		return nil
	}

	if result.Error != nil {
		r.logger.Error("Failed to release lease lock", map[string]any{
			"transaction_id": transactionID,
			"error":          result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	if result.RowsAffected > 0 {
		r.logger.Info("Lease lock released successfully", map[string]any{
			"transaction_id": transactionID,
		})
	}

	return nil
}

// CleanupExpiredLocks removes all expired locks from the database
func (r *LeaseLockRepository) CleanupExpiredLocks(ctx context.Context) error {
	now := r.timeProvider.Now()

	result := r.db.WithContext(ctx).Where("expires_at < ?", now).Delete(&model.LeaseLock{})
	if result.Error != nil {
		r.logger.Error("Failed to clean up expired lease locks", map[string]any{
			"error": result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	r.logger.Info("Expired lease locks cleanup completed", map[string]any{
		"locks_removed": result.RowsAffected,
	})
	return nil
}

// isContextError checks if an error is related to context timeout or cancellation
func isContextError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}

	errStr := err.Error()
	return strings.Contains(errStr, "context deadline exceeded") ||
		strings.Contains(errStr, "context canceled") ||
		strings.Contains(errStr, "deadline exceeded") ||
		strings.Contains(errStr, "timeout")
}
