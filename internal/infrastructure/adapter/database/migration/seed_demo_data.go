package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/lease-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/lease-processor/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// Demo parties and properties used by the development environment and the
// lease-flow script.
var demoParties = []model.Party{
	{ID: 1, FullName: "Ada Kowalski", Email: "ada.kowalski@example.com", Phone: "+48-600-100-100"},
	{ID: 2, FullName: "Marcus Oyelaran", Email: "marcus.oyelaran@example.com", Phone: "+44-7700-900-200"},
	{ID: 3, FullName: "Yuki Tanaka", Email: "yuki.tanaka@example.com", Phone: "+81-80-1234-5678"},
	{ID: 4, FullName: "Elena Petrova", Email: "elena.petrova@example.com", Phone: "+359-88-555-0101"},
}

var demoProperties = []model.Property{
	{ID: 1, OwnerID: 2, Address: "14 Riverside Court, Apt 3B, Springfield"},
	{ID: 2, OwnerID: 2, Address: "98 Alder Lane, Unit 12, Springfield"},
	{ID: 3, OwnerID: 4, Address: "221 Maple Heights, Floor 5, Lakeview"},
}

// SeedDemoData inserts demo parties and properties when they don't exist
func SeedDemoData(ctx context.Context, db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) error {
	now := timeProvider.Now()

	for _, party := range demoParties {
		party.CreatedAt = now
		party.UpdatedAt = now

		var count int64
		if err := db.WithContext(ctx).Model(&model.Party{}).Where("id = ?", party.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			if err := db.WithContext(ctx).Create(&party).Error; err != nil {
				return err
			}
			logger.Info("Seeded demo party", map[string]any{"party_id": party.ID, "name": party.FullName})
		}
	}

	for _, property := range demoProperties {
		property.CreatedAt = now
		property.UpdatedAt = now

		var count int64
		if err := db.WithContext(ctx).Model(&model.Property{}).Where("id = ?", property.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			if err := db.WithContext(ctx).Create(&property).Error; err != nil {
				return err
			}
			logger.Info("Seeded demo property", map[string]any{"property_id": property.ID})
		}
	}

	return nil
}
