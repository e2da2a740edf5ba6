package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "LOG_LEVEL", "LOG_FORMAT", "STREAK_RESET_HOUR", "STREAK_CHECK_INTERVAL",
		"SEED_DEFAULT_HABITS", "TIMEZONE", "REDIS_HOST", "REDIS_PORT", "REDIS_PASSWORD",
		"REDIS_DB", "RATE_LIMIT", "RATE_LIMIT_WINDOW",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 4, cfg.StreakResetHour)
	assert.Equal(t, time.Minute, cfg.StreakCheckInterval)
	assert.True(t, cfg.SeedDefaultHabits)
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, "6379", cfg.Redis.Port)
	assert.Equal(t, 100, cfg.RateLimit)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
	assert.Equal(t, time.Local, cfg.Location)
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("STREAK_RESET_HOUR", "0")
	t.Setenv("STREAK_CHECK_INTERVAL", "30s")
	t.Setenv("SEED_DEFAULT_HABITS", "false")
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_DB", "2")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 0, cfg.StreakResetHour)
	assert.Equal(t, 30*time.Second, cfg.StreakCheckInterval)
	assert.False(t, cfg.SeedDefaultHabits)
	assert.Equal(t, time.UTC, cfg.Location)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, 2, cfg.Redis.DB)
}

func TestLoad_DotEnvFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=7000\nRATE_LIMIT=5\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "7000", cfg.Port)
	assert.Equal(t, 5, cfg.RateLimit)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"STREAK_RESET_HOUR", "24"},
		{"STREAK_RESET_HOUR", "four"},
		{"STREAK_CHECK_INTERVAL", "-1m"},
		{"SEED_DEFAULT_HABITS", "maybe"},
		{"RATE_LIMIT", "lots"},
		{"TIMEZONE", "Mars/Olympus_Mons"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}
