package model

import (
	"time"
)

// LeaseTransaction represents the database model for lease transactions
type LeaseTransaction struct {
	ID                     string `gorm:"primaryKey;size:36"`
	TenantID               uint64 `gorm:"not null;index"`
	OwnerID                uint64 `gorm:"not null;index"`
	PropertyID             uint64 `gorm:"not null;index:idx_lease_property_status"`
	Status                 string `gorm:"not null;size:50;index:idx_lease_property_status"`
	TenantSignedAt         *time.Time
	OwnerSignedAt          *time.Time
	TerminationEffectiveAt *time.Time
	Version                uint64    `gorm:"not null;default:0"`
	CreatedAt              time.Time `gorm:"not null"`
	UpdatedAt              time.Time `gorm:"not null"`
}

// TableName specifies the table name for LeaseTransaction
func (LeaseTransaction) TableName() string {
	return "lease_transactions"
}
