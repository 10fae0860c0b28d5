package backend

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"mysession/domain"
	"mysession/service"
)

// Store backends.
const (
	StoreMemory   = "memory"
	StoreRedis    = "redis"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
)

// Config holds the settings shared by sessiond and sessionctl.
type Config struct {
	Store       string
	RedisAddr   string
	DatabaseURL string
	SQLitePath  string

	Policy         domain.ConflictPolicy
	KeyLength      int
	CreateAttempts int
	StoreTimeout   time.Duration

	LogLevel string
	SeedPath string
}

// LoadConfig reads Config from the environment, applying defaults.
func LoadConfig() (*Config, error) {
	config := &Config{
		Store:          StoreMemory,
		RedisAddr:      "redis://localhost:6379",
		SQLitePath:     "data/sessions.db",
		Policy:         domain.PolicyEvict,
		KeyLength:      service.DefaultKeyLength,
		CreateAttempts: 5,
		StoreTimeout:   3 * time.Second,
		LogLevel:       "info",
	}

	if v := os.Getenv("STORE_BACKEND"); v != "" {
		switch v {
		case StoreMemory, StoreRedis, StorePostgres, StoreSQLite:
			config.Store = v
		default:
			return nil, fmt.Errorf("invalid STORE_BACKEND: %q", v)
		}
	}

	if v := os.Getenv("REDIS_ADDR"); v != "" {
		config.RedisAddr = v
	}

	config.DatabaseURL = os.Getenv("DATABASE_URL")
	if config.Store == StorePostgres && config.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required for the postgres backend")
	}

	if v := os.Getenv("SQLITE_PATH"); v != "" {
		config.SQLitePath = v
	}

	if v := os.Getenv("SESSION_CONFLICT_POLICY"); v != "" {
		policy, err := domain.ParseConflictPolicy(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SESSION_CONFLICT_POLICY: %w", err)
		}
		config.Policy = policy
	}

	if v := os.Getenv("SESSION_KEY_LENGTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SESSION_KEY_LENGTH: %w", err)
		}
		if n <= 0 {
			return nil, fmt.Errorf("invalid SESSION_KEY_LENGTH: must be positive")
		}
		config.KeyLength = n
	}

	if v := os.Getenv("SESSION_CREATE_ATTEMPTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SESSION_CREATE_ATTEMPTS: %w", err)
		}
		if n <= 0 {
			return nil, fmt.Errorf("invalid SESSION_CREATE_ATTEMPTS: must be positive")
		}
		config.CreateAttempts = n
	}

	if v := os.Getenv("STORE_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid STORE_TIMEOUT: %w", err)
		}
		config.StoreTimeout = d
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		config.LogLevel = v
	}

	config.SeedPath = os.Getenv("CONFIG_PATH")

	return config, nil
}

// ManagerConfig returns the session manager settings.
func (c *Config) ManagerConfig() service.SessionManagerConfig {
	return service.SessionManagerConfig{
		Policy:         c.Policy,
		CreateAttempts: c.CreateAttempts,
		StoreTimeout:   c.StoreTimeout,
	}
}
