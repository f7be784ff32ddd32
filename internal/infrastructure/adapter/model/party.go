package model

import (
	"time"
)

// Party represents the database model for tenants and owners
type Party struct {
	ID        uint64    `gorm:"primaryKey"`
	FullName  string    `gorm:"not null;size:255"`
	Email     string    `gorm:"size:255;index"`
	Phone     string    `gorm:"size:50"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Party
func (Party) TableName() string {
	return "parties"
}
