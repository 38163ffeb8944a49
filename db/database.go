package db

import (
	"consulting_site_go/models"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the sqlite inquiry archive with WAL mode enabled and
// migrates its schema. The caller owns the returned handle.
func Open(dbPath string, environment string) (*gorm.DB, error) {
	logLevel := logger.Info
	if environment == "production" {
		logLevel = logger.Warn
	}

	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// Enable WAL mode so exports can read while the server writes
	dsn := dbPath + "?_journal_mode=WAL"

	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(conn); err != nil {
		Close(conn)
		return nil, err
	}

	log.Println("Database connection established (WAL mode enabled)")
	return conn, nil
}

// Migrate creates or updates the archive tables
func Migrate(conn *gorm.DB) error {
	if conn == nil {
		return fmt.Errorf("database not initialized")
	}
	if err := conn.AutoMigrate(&models.Inquiry{}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Println("Database migrations completed")
	return nil
}

// Close closes the database connection
func Close(conn *gorm.DB) error {
	if conn == nil {
		return nil
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	return sqlDB.Close()
}
