package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sumantkumarraj20/KLD/internal/config"
)

func validConfig() config.Config {
	return config.Config{
		Addr:                  ":8080",
		DBPath:                "test.db",
		LogLevel:              "INFO",
		DefaultLocale:         "en",
		RewardsTimeoutSeconds: 15,
		SyncWorkerCount:       1,
		SyncQueueSize:         32,
		SessionTTLMinutes:     60,
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_EmptyAddr(t *testing.T) {
	cfg := validConfig()
	cfg.Addr = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ADDR cannot be empty")
}

func TestValidate_EmptyDBPath(t *testing.T) {
	cfg := validConfig()
	cfg.DBPath = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PATH cannot be empty")
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	cfg := validConfig()
	cfg.LogLevel = "LOUD"

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_LEVEL")
}

func TestValidate_ValidLogLevels(t *testing.T) {
	for _, level := range []string{"DEBUG", "INFO", "WARN", "WARNING", "ERROR", "info"} {
		t.Run(level, func(t *testing.T) {
			cfg := validConfig()
			cfg.LogLevel = level
			assert.NoError(t, cfg.Validate())
		})
	}
}

func TestValidate_UnsupportedLocale(t *testing.T) {
	cfg := validConfig()
	cfg.DefaultLocale = "fr"

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DEFAULT_LOCALE")
}

func TestValidate_InvalidWorkerSettings(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{"zero workers", func(c *config.Config) { c.SyncWorkerCount = 0 }, "SYNC_WORKER_COUNT"},
		{"negative queue", func(c *config.Config) { c.SyncQueueSize = -1 }, "SYNC_QUEUE_SIZE"},
		{"zero timeout", func(c *config.Config) { c.RewardsTimeoutSeconds = 0 }, "REWARDS_TIMEOUT_SECONDS"},
		{"zero session ttl", func(c *config.Config) { c.SessionTTLMinutes = 0 }, "SESSION_TTL_MINUTES"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate_MultipleErrors(t *testing.T) {
	cfg := validConfig()
	cfg.Addr = ""
	cfg.DBPath = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ADDR cannot be empty")
	assert.Contains(t, err.Error(), "DB_PATH cannot be empty")
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("DB_PATH", "custom.db")
	t.Setenv("DEFAULT_LOCALE", "hi")
	t.Setenv("SYNC_QUEUE_SIZE", "7")

	cfg := config.Load()

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "custom.db", cfg.DBPath)
	assert.Equal(t, "hi", cfg.DefaultLocale)
	assert.Equal(t, 7, cfg.SyncQueueSize)
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"ADDR", "DB_PATH", "LOG_LEVEL", "DEFAULT_LOCALE", "REWARDS_API_URL", "SYNC_WORKER_COUNT", "SYNC_QUEUE_SIZE", "SESSION_TTL_MINUTES"} {
		os.Unsetenv(key)
	}

	cfg := config.Load()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "file:kld.db", cfg.DBPath)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, "en", cfg.DefaultLocale)
	assert.Equal(t, 1, cfg.SyncWorkerCount)
	assert.Equal(t, 32, cfg.SyncQueueSize)
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("SYNC_WORKER_COUNT", "not-a-number")

	cfg := config.Load()
	assert.Equal(t, 1, cfg.SyncWorkerCount)
}
