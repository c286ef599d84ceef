package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests use t.Setenv and therefore cannot run in parallel.

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ADOPTME_DATABASE_URL", "mongodb://localhost:27017")
	t.Setenv("ADOPTME_AUTH_JWT_SECRET", "config-test-secret-that-is-long-enough")
}

func TestLoadFromEnvironment(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	// Defaults fill everything not set explicitly.
	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, EnvProduction, cfg.Server.Env)
	assert.Equal(t, "adoptme", cfg.Database.Name)
	assert.Equal(t, 60, cfg.Auth.TokenLifetimeMinutes)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Database.URL)
	assert.False(t, cfg.Server.IsDevelopment())
}

func TestLoadEnvOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ADOPTME_SERVER_PORT", "9090")
	t.Setenv("ADOPTME_SERVER_ENV", EnvDevelopment)
	t.Setenv("ADOPTME_SERVER_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.True(t, cfg.Server.IsDevelopment())
}

func TestLoadTestEnv(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ADOPTME_SERVER_ENV", EnvTest)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvTest, cfg.Server.Env)
	// Test mode does not enable the development-only surfaces.
	assert.False(t, cfg.Server.IsDevelopment())
}

func TestLoadValidation(t *testing.T) {
	t.Run("missing database url", func(t *testing.T) {
		t.Setenv("ADOPTME_AUTH_JWT_SECRET", "config-test-secret-that-is-long-enough")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("short jwt secret", func(t *testing.T) {
		t.Setenv("ADOPTME_DATABASE_URL", "mongodb://localhost:27017")
		t.Setenv("ADOPTME_AUTH_JWT_SECRET", "too-short")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("invalid env name", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("ADOPTME_SERVER_ENV", "staging")

		_, err := Load()
		assert.Error(t, err)
	})
}
