package model

import (
	"time"
)

// ScheduleEntry represents the database model for one rent installment
type ScheduleEntry struct {
	ID                  uint64    `gorm:"primaryKey;autoIncrement"`
	TransactionID       string    `gorm:"not null;size:36;uniqueIndex:idx_schedule_txn_seq"`
	SequenceIndex       int       `gorm:"not null;uniqueIndex:idx_schedule_txn_seq"`
	DueDate             time.Time `gorm:"not null"`
	ExpectedAmount      string    `gorm:"not null;size:50"`
	ExpectedAmountCents int64     `gorm:"not null"`
	Status              string    `gorm:"not null;size:50"`
	PaidAt              *time.Time
	PaidAmount          string    `gorm:"size:50"`
	ConfirmationID      string    `gorm:"size:255;index"`
	CreatedAt           time.Time `gorm:"not null"`
	UpdatedAt           time.Time `gorm:"not null"`

	Transaction LeaseTransaction `gorm:"foreignKey:TransactionID;references:ID"`
}

// TableName specifies the table name for ScheduleEntry
func (ScheduleEntry) TableName() string {
	return "schedule_entries"
}
