package database

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/healthtrack/backend/config"
	"github.com/healthtrack/backend/internal/models"
)

// New opens the embedded SQLite store at the configured path and runs the
// schema migration. The store lives in a single file; there is nothing to
// provision beyond a writable directory.
func New(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("error opening database %s: %w", cfg.DBPath, err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Printf("Successfully opened database at %s", cfg.DBPath)
	return db, nil
}

// Migrate creates or updates the schema for every model.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.HealthProfile{},
		&models.MealLog{},
		&models.WaterLog{},
		&models.WorkoutLog{},
		&models.ProgressEntry{},
		&models.Favorite{},
		&models.Goal{},
	); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
