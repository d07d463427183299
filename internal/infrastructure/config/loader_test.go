package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Test profile from file", func(t *testing.T) {
		t.Setenv("MKT_ENV", Test)

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, Test, cfg.Environment)
		assert.False(t, cfg.IsProduction())
		assert.Equal(t, 5055, cfg.Server.Port)
		assert.Equal(t, 2*time.Second, cfg.Server.ShutdownTimeout)
		// unset keys fall back to defaults
		assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
		assert.Equal(t, int64(0), cfg.Marketplace.InferenceBaseOffset)
		assert.Equal(t, 5, cfg.Marketplace.DefaultTopLimit)
		assert.Equal(t, int64(1<<20), cfg.Marketplace.MaxUploadBytes())
	})

	t.Run("Environment overrides win", func(t *testing.T) {
		t.Setenv("MKT_ENV", Test)
		t.Setenv("MKT_SERVER_PORT", "6001")
		t.Setenv("MKT_LOGGER_LEVEL", "warn")
		t.Setenv("MKT_MARKETPLACE_INFERENCE_BASE_OFFSET", "42")
		t.Setenv("MKT_MARKETPLACE_SEED_DEMO_DATA", "false")
		t.Setenv("MKT_SERVER_ALLOWED_ORIGINS", "http://a.test,http://b.test")

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 6001, cfg.Server.Port)
		assert.Equal(t, "warn", cfg.Logger.Level)
		assert.Equal(t, int64(42), cfg.Marketplace.InferenceBaseOffset)
		assert.False(t, cfg.Marketplace.SeedDemoData)
		assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.AllowedOrigins)
	})

	t.Run("Missing profile uses defaults", func(t *testing.T) {
		t.Setenv("MKT_ENV", "staging")

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "staging", cfg.Environment)
		assert.Equal(t, 5000, cfg.Server.Port)
		assert.Equal(t, int64(156000), cfg.Marketplace.InferenceBaseOffset)
		assert.True(t, cfg.Marketplace.SeedDemoData)
		assert.Equal(t, 10, cfg.Marketplace.DefaultTopLimit)
	})

	t.Run("Invalid port", func(t *testing.T) {
		t.Setenv("MKT_ENV", Test)
		t.Setenv("MKT_SERVER_PORT", "70000")

		_, err := LoadConfig()
		assert.Error(t, err)
	})
}
