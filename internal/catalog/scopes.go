package catalog

import (
	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/models"
	"gorm.io/gorm"
)

// ForLevel returns a GORM scope that filters games by level.
func ForLevel(level models.Level) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("level = ?", level)
	}
}

// CatalogOnly excludes materialized daily games.
func CatalogOnly(db *gorm.DB) *gorm.DB {
	return db.Where("is_daily = ?", false)
}
