package database

import (
	"fmt"

	"riftrewind/pkg/database/models"

	"gorm.io/gorm"
)

// RunMigrations runs the auto migrations for every model.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.PlayerProfileRecord{},
	); err != nil {
		return fmt.Errorf("couldn't run the migrations: %w", err)
	}

	return nil
}
