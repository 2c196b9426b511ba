package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Bhargavmupparisetty/Trackable-pages/internal/models"
)

func TestInitDB(t *testing.T) {
	t.Run("Sqlite in-memory", func(t *testing.T) {
		db, err := InitDB("sqlite://:memory:")
		assert.NoError(t, err)
		assert.NotNil(t, db)

		// AutoMigrate must have produced both tables
		assert.True(t, db.Migrator().HasTable(&models.TrackingEntry{}))
		assert.True(t, db.Migrator().HasTable(&models.ClickRecord{}))
	})

	t.Run("Unsupported driver", func(t *testing.T) {
		_, err := InitDB("mysql://localhost/db")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported database driver")
	})
}

func TestRunMigrations_InvalidSource(t *testing.T) {
	err := RunMigrations("postgres://localhost:1/db", "file://does-not-exist")
	assert.Error(t, err)
}

func TestInitRedis_Unreachable(t *testing.T) {
	_, err := InitRedis("localhost:1", "", 0)
	assert.Error(t, err)
}
