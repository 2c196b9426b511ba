package repository

import (
	"fmt"
	"log"
	"strings"

	"github.com/glebarez/sqlite"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Bhargavmupparisetty/Trackable-pages/internal/models"
)

// InitDB opens the persistent backend named by DATABASE_URL. Callers decide
// between this and the in-memory store; "memory" never reaches here.
func InitDB(databaseURL string) (*gorm.DB, error) {
	var dialer gorm.Dialector
	if strings.HasPrefix(databaseURL, "postgres") {
		dialer = postgres.Open(databaseURL)
	} else if strings.HasPrefix(databaseURL, "sqlite") {
		dialer = sqlite.Open(strings.TrimPrefix(databaseURL, "sqlite://"))
	} else {
		return nil, fmt.Errorf("unsupported database driver: %s", databaseURL)
	}

	db, err := gorm.Open(dialer, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Postgres schemas come from versioned migrations; sqlite gets the
	// generated schema directly.
	if !strings.HasPrefix(databaseURL, "postgres") {
		if err := db.AutoMigrate(&models.TrackingEntry{}, &models.ClickRecord{}); err != nil {
			return nil, fmt.Errorf("failed to migrate schema: %w", err)
		}
	}

	return db, nil
}

func RunMigrations(databaseURL string, sourcePath string) error {
	if sourcePath == "" {
		sourcePath = "file://migration"
	}
	m, err := migrate.New(
		sourcePath,
		databaseURL,
	)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run up migrations: %w", err)
	}

	log.Println("Database migrations ran successfully")
	return nil
}
