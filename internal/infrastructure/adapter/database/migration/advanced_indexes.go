package migration

import (
	coreport "github.com/amirhossein-jamali/lease-processor/internal/domain/port/core"
	"gorm.io/gorm"
)

// AdvancedIndexManager manages PostgreSQL-specific advanced indexes
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

// CreateAdvancedIndexes creates advanced PostgreSQL indexes
func (m *AdvancedIndexManager) CreateAdvancedIndexes() error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	// One active lease per property, enforced at the storage layer as well
	if err := m.db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_lease_transactions_active_property
		ON lease_transactions (property_id)
		WHERE status = 'active'
	`).Error; err != nil {
		m.logger.Error("Failed to create active lease partial index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Fast idempotency checks on ingested payment confirmations
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_schedule_entries_confirmation_id
		ON schedule_entries (confirmation_id)
		WHERE confirmation_id <> ''
	`).Error; err != nil {
		m.logger.Error("Failed to create confirmation id index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Composite index for the next-due lookup per transaction
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_schedule_entries_txn_status
		ON schedule_entries (transaction_id, status)
	`).Error; err != nil {
		m.logger.Error("Failed to create schedule status composite index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_lease_locks_expires_at
		ON lease_locks (expires_at)
	`).Error; err != nil {
		m.logger.Error("Failed to create index on lease_locks.expires_at", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// BRIN index for created_at (more efficient for temporal data)
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_lease_transactions_created_at_brin
		ON lease_transactions USING BRIN (created_at)
		WITH (pages_per_range = 32)
	`).Error; err != nil {
		m.logger.Error("Failed to create BRIN index on created_at", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", nil)
	return nil
}
