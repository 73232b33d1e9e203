package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"mercado/internal/models"
)

// Config selects the backing store. PostgresDSN wins when set; otherwise a
// local SQLite file is used, which keeps development and tests self
// contained.
type Config struct {
	PostgresDSN string
	SQLitePath  string
}

// Open connects to the configured database and migrates the schema for all
// resources. The returned handle is the process-wide store connection;
// callers own its lifecycle and must Close it on shutdown.
func Open(cfg Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if cfg.PostgresDSN != "" {
		dialector = postgres.Open(cfg.PostgresDSN)
	} else {
		dialector = sqlite.Open(cfg.SQLitePath)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.Client{},
		&models.Seller{},
		&models.Product{},
		&models.Order{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database schema: %w", err)
	}
	return db, nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to access underlying connection: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}
