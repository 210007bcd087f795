package main

import (
	"fmt"
	"log/slog"

	"costmanager/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// openDB connects to Postgres and optionally runs AutoMigrate for the users
// and costs tables. Migration failures are logged and ignored so a restricted
// runtime role does not block startup.
func openDB(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if cfg.AutoMigrate {
		// Migrate models individually so a failure on one doesn't block others
		if err := db.AutoMigrate(&models.User{}); err != nil {
			slog.Warn("migration warning (users)", "err", err)
		}
		if err := db.AutoMigrate(&models.Cost{}); err != nil {
			slog.Warn("migration warning (costs)", "err", err)
		}
	}
	return db, nil
}
