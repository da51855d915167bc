package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "LOG_LEVEL", "SEED_FILE", "SESSION_COOKIE", "SESSION_IDLE_TIMEOUT_SEC", "RATE_LIMIT_ENABLED", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "OTEL_SERVICE_NAME"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.SeedFile)
	assert.Equal(t, "docdash", cfg.ServiceName)
	assert.Equal(t, "docdash_session", cfg.Session.CookieName)
	assert.Equal(t, 30*time.Minute, cfg.Session.IdleTimeout())
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 20.0, cfg.RateLimit.RPS)
	assert.Equal(t, 40, cfg.RateLimit.Burst)
}

func TestLoad(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SEED_FILE", "testdata/seed.yaml")
	t.Setenv("SESSION_IDLE_TIMEOUT_SEC", "0")
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("RATE_LIMIT_RPS", "2.5")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "testdata/seed.yaml", cfg.SeedFile)
	assert.Equal(t, time.Duration(0), cfg.Session.IdleTimeout())
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 2.5, cfg.RateLimit.RPS)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("TEST_ENV_VAR", "value")

	assert.Equal(t, "value", getEnv("TEST_ENV_VAR", "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	t.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	t.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	t.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	t.Setenv(key, "")
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	t.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	t.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))
}

func TestGetEnvFloat(t *testing.T) {
	key := "TEST_FLOAT_VAR"

	t.Setenv(key, "0.5")
	assert.Equal(t, 0.5, getEnvFloat(key, 1))

	t.Setenv(key, "-3")
	assert.Equal(t, 1.0, getEnvFloat(key, 1))

	t.Setenv(key, "x")
	assert.Equal(t, 1.0, getEnvFloat(key, 1))
}
