package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("AI_API_KEY", "test-api-key")
}

func TestLoadConfigDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "healthtrack.db", cfg.DBPath)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr())
	assert.Equal(t, 30, cfg.AITimeoutSeconds)
	assert.Equal(t, "meals.csv", cfg.RecipeCSVPath)
}

func TestLoadConfigOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("DB_PATH", "/data/app.db")
	t.Setenv("AI_TIMEOUT_SECONDS", "10")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.ServerPort)
	assert.Equal(t, "/data/app.db", cfg.DBPath)
	assert.Equal(t, 10, cfg.AITimeoutSeconds)
}

func TestLoadConfigRequiresSecrets(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("AI_API_KEY", "test-api-key")
	_, err := LoadConfig()
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("AI_API_KEY", "")
	_, err = LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigRejectsBadTimeout(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("AI_TIMEOUT_SECONDS", "zero")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestValidateConfig(t *testing.T) {
	cfg := &Config{
		ServerPort: "8080",
		DBPath:     "healthtrack.db",
		JWTSecret:  "secret",
		AIAPIKey:   "key",
	}
	assert.NoError(t, ValidateConfig(cfg))

	cfg.AIAPIKey = ""
	err := ValidateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AI_API_KEY: required environment variable is not set")
}

func TestValidationErrorFormat(t *testing.T) {
	err := ValidationError{Field: "SERVER_PORT", Message: "must not be empty"}
	assert.Equal(t, "SERVER_PORT: must not be empty", err.Error())
}

func TestGetEnvironment(t *testing.T) {
	t.Setenv("ENV", "")
	assert.Equal(t, Development, GetEnvironment())
	assert.False(t, IsProduction())

	t.Setenv("ENV", "test")
	assert.Equal(t, Test, GetEnvironment())

	t.Setenv("ENV", "production")
	assert.Equal(t, Production, GetEnvironment())
	assert.True(t, IsProduction())
}
