package model

import (
	"time"
)

// Property represents the database model for rentable properties
type Property struct {
	ID        uint64    `gorm:"primaryKey"`
	OwnerID   uint64    `gorm:"not null;index"`
	Address   string    `gorm:"not null;type:text"`
	Occupied  bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Property
func (Property) TableName() string {
	return "properties"
}
