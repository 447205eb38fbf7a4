package main

import (
	"log/slog"
	"os"
	"strings"

	"fintrack/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var db *gorm.DB

func initDB() {
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		slog.Error("DB_DSN is not set; a Postgres DSN is required")
		os.Exit(1)
	}
	var err error
	db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		slog.Error("failed to connect postgres database", "error", err)
		os.Exit(1)
	}
	// Control schema migrations with env DB_AUTO_MIGRATE (default true).
	shouldMigrate := true
	if v := os.Getenv("DB_AUTO_MIGRATE"); v != "" {
		lv := strings.ToLower(v)
		if lv == "false" || lv == "0" || lv == "no" {
			shouldMigrate = false
		}
	}
	if shouldMigrate {
		migrateSchema(db)
	}
}

// migrateSchema runs AutoMigrate per model so a failure on one doesn't block others.
func migrateSchema(gdb *gorm.DB) {
	if err := gdb.AutoMigrate(&models.User{}); err != nil {
		slog.Warn("migration warning (users)", "error", err)
	}
	if err := gdb.AutoMigrate(&models.Transaction{}); err != nil {
		slog.Warn("migration warning (transactions)", "error", err)
	}
}
