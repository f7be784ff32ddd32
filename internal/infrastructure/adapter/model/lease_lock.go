package model

import (
	"time"
)

// LeaseLock represents a lock on a lease transaction for lifecycle processing
type LeaseLock struct {
	TransactionID string    `gorm:"primaryKey;not null;size:36"`
	LockedAt      time.Time `gorm:"not null"`
	ExpiresAt     time.Time `gorm:"not null"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the table name for LeaseLock
func (LeaseLock) TableName() string {
	return "lease_locks"
}
