package model

import (
	"time"
)

// ContractSnapshot represents the database model for frozen contract terms.
// Rows are insert-only; there is no update path.
type ContractSnapshot struct {
	ID                        uint64    `gorm:"primaryKey;autoIncrement"`
	TransactionID             string    `gorm:"uniqueIndex;not null;size:36"`
	TenantID                  uint64    `gorm:"not null"`
	TenantFullName            string    `gorm:"not null;size:255"`
	TenantEmail               string    `gorm:"size:255"`
	TenantPhone               string    `gorm:"size:50"`
	OwnerID                   uint64    `gorm:"not null"`
	OwnerFullName             string    `gorm:"not null;size:255"`
	OwnerEmail                string    `gorm:"size:255"`
	OwnerPhone                string    `gorm:"size:50"`
	PropertyID                uint64    `gorm:"not null;index"`
	PropertyAddress           string    `gorm:"not null;type:text"`
	LeaseStart                time.Time `gorm:"not null"`
	LeaseEnd                  time.Time `gorm:"not null"`
	DurationClass             string    `gorm:"not null;size:50"`
	RentAmount                string    `gorm:"not null;size:50"`
	RentAmountCents           int64     `gorm:"not null"`
	RentDueDay                int       `gorm:"not null"`
	SecurityDeposit           string    `gorm:"not null;size:50"`
	SecurityDepositCents      int64     `gorm:"not null"`
	SecurityDepositRefundDays int       `gorm:"not null"`
	AdvancePayment            string    `gorm:"not null;size:50"`
	AdvancePaymentCents       int64     `gorm:"not null"`
	HouseRules                string    `gorm:"type:text"`
	TerminationNoticeDays     int       `gorm:"not null"`
	CreatedAt                 time.Time `gorm:"not null"`

	Transaction LeaseTransaction `gorm:"foreignKey:TransactionID;references:ID"`
}

// TableName specifies the table name for ContractSnapshot
func (ContractSnapshot) TableName() string {
	return "contract_snapshots"
}
