package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Default Values", func(t *testing.T) {
		cfg, err := LoadConfig()
		assert.NoError(t, err)
		assert.Equal(t, "local", cfg.AppEnv)
		assert.Equal(t, "3000", cfg.Port)
		assert.Equal(t, "memory", cfg.DatabaseURL)
	})

	t.Run("Environment Variables", func(t *testing.T) {
		os.Setenv("PORT", "9999")
		os.Setenv("DATABASE_URL", "sqlite://tracking.db")
		defer os.Unsetenv("PORT")
		defer os.Unsetenv("DATABASE_URL")

		cfg, err := LoadConfig()
		assert.NoError(t, err)
		assert.Equal(t, "9999", cfg.Port)
		assert.Equal(t, "sqlite://tracking.db", cfg.DatabaseURL)
	})
}
