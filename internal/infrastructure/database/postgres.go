package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/you/fleetsvc/internal/infrastructure/repositories"
)

// Open creates a pooled database handle. Every repository receives this
// handle by injection; there is no package-level connection.
func Open(dsn string) (*gorm.DB, error) {
	config := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	return gorm.Open(postgres.Open(dsn), config)
}

// AutoMigrate creates or updates the relational schema for all entities.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&repositories.DBUser{},
		&repositories.DBRole{},
		&repositories.DBUserRole{},
		&repositories.DBDriver{},
		&repositories.DBVehicle{},
		&repositories.DBTrip{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
