package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr                  string
	DBPath                string
	LogLevel              string
	DefaultLocale         string
	RewardsAPIURL         string
	RewardsTimeoutSeconds int
	SyncWorkerCount       int
	SyncQueueSize         int
	SessionTTLMinutes     int
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:                  envOr("ADDR", ":8080"),
		DBPath:                envOr("DB_PATH", "file:kld.db"),
		LogLevel:              envOr("LOG_LEVEL", "INFO"),
		DefaultLocale:         envOr("DEFAULT_LOCALE", "en"),
		RewardsAPIURL:         envOr("REWARDS_API_URL", ""),
		RewardsTimeoutSeconds: envIntOr("REWARDS_TIMEOUT_SECONDS", 15),
		SyncWorkerCount:       envIntOr("SYNC_WORKER_COUNT", 1),
		SyncQueueSize:         envIntOr("SYNC_QUEUE_SIZE", 32),
		SessionTTLMinutes:     envIntOr("SESSION_TTL_MINUTES", 60),
	}
}

// Validate checks the configuration for values that would prevent the
// server from starting correctly. All problems are reported at once.
func (c Config) Validate() error {
	var problems []string

	if c.Addr == "" {
		problems = append(problems, "ADDR cannot be empty")
	}
	if c.DBPath == "" {
		problems = append(problems, "DB_PATH cannot be empty")
	}
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "WARNING", "ERROR":
	default:
		problems = append(problems, fmt.Sprintf("LOG_LEVEL %q is not a valid level", c.LogLevel))
	}
	switch c.DefaultLocale {
	case "en", "hi", "zh":
	default:
		problems = append(problems, fmt.Sprintf("DEFAULT_LOCALE %q is not supported", c.DefaultLocale))
	}
	if c.RewardsTimeoutSeconds <= 0 {
		problems = append(problems, "REWARDS_TIMEOUT_SECONDS must be positive")
	}
	if c.SyncWorkerCount <= 0 {
		problems = append(problems, "SYNC_WORKER_COUNT must be positive")
	}
	if c.SyncQueueSize <= 0 {
		problems = append(problems, "SYNC_QUEUE_SIZE must be positive")
	}
	if c.SessionTTLMinutes <= 0 {
		problems = append(problems, "SESSION_TTL_MINUTES must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}
