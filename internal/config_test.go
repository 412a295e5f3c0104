package internal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	for _, key := range []string{"ENV", "LOG_LEVEL", "PORT", "JWT_SECRET", "TOKEN_TTL", "OTP_TTL", "REDIS_URL"} {
		t.Setenv(key, "")
	}

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, uint16(5000), cfg.Port)
	assert.Equal(t, 30*24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 10*time.Minute, cfg.Auth.OTPTTL)
	assert.Equal(t, 5*time.Minute, cfg.Redis.TTL)
	assert.Empty(t, cfg.Redis.URL)
	assert.False(t, cfg.IsProduction())
}

func TestNewConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("ENV", "staging")
	t.Setenv("LOG_LEVEL", "verbose")
	t.Setenv("JWT_SECRET", "a-real-secret")
	t.Setenv("OTP_TTL", "soon")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10*time.Minute, cfg.Auth.OTPTTL)
	assert.True(t, cfg.IsProduction())
}

func TestNewConfig_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("ENV", "prod")
	t.Setenv("JWT_SECRET", "")

	_, err := NewConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestNewConfig_Overrides(t *testing.T) {
	t.Setenv("ENV", "dev")
	t.Setenv("PORT", "8081")
	t.Setenv("TOKEN_TTL", "1h")
	t.Setenv("REDIS_URL", "localhost:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("SENTRY_ENABLED", "true")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, uint16(8081), cfg.Port)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "localhost:6379", cfg.Redis.URL)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.True(t, cfg.Sentry.Enabled)
}
