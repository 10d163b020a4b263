package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Storage driver names.
const (
	StorageDriverFile  = "file"
	StorageDriverRedis = "redis"
)

// DefaultBackendURL is the production Glitzzera backend. Overridable via
// BACKEND_URL; nothing outside this package may hardcode a base URL.
const DefaultBackendURL = "https://glitzzera-backend.vercel.app"

// Config holds all application configuration loaded from environment
// variables. It is the single source of truth for runtime parameters.
type Config struct {
	Env         string
	BackendURL  string
	HTTPTimeout time.Duration

	Session SessionConfig
	Storage StorageConfig
	Redis   RedisConfig
	Mock    MockConfig
}

// SessionConfig controls the locally issued admin session token.
type SessionConfig struct {
	Secret string
	TTL    time.Duration
}

// StorageConfig selects and parameterizes the durable key-value store that
// persists the session token and last-viewed page across restarts.
type StorageConfig struct {
	Driver string // "file" or "redis"
	Path   string // file driver only
}

// RedisConfig contains Redis connection parameters (redis storage driver).
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// MockConfig parameterizes the development mock backend.
type MockConfig struct {
	Port string
}

// Load reads configuration from environment variables. If a .env file exists
// in the working directory, it will be loaded first. It returns a populated
// Config or an error with a human-friendly message.
func Load() (*Config, error) {
	// Load .env if present; ignore error if file is missing so that production
	// environments relying solely on real environment variables keep working.
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.Env = getEnv("ENV", "development")
	cfg.BackendURL = getEnv("BACKEND_URL", DefaultBackendURL)

	var err error
	if cfg.HTTPTimeout, err = parseDurationEnv("HTTP_TIMEOUT", "15s"); err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}

	cfg.Session = SessionConfig{
		Secret: getEnv("SESSION_SECRET", ""),
	}
	if cfg.Session.TTL, err = parseDurationEnv("SESSION_TTL", "720h"); err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}

	cfg.Storage = StorageConfig{
		Driver: getEnv("STORAGE_DRIVER", StorageDriverFile),
		Path:   getEnv("STORAGE_PATH", ".glitzzera-admin.json"),
	}

	cfg.Redis = RedisConfig{
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       getEnvInt("REDIS_DB", 0),
	}

	cfg.Mock = MockConfig{
		Port: getEnv("MOCK_PORT", "8080"),
	}

	switch cfg.Storage.Driver {
	case StorageDriverFile, StorageDriverRedis:
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q: must be %q or %q",
			cfg.Storage.Driver, StorageDriverFile, StorageDriverRedis)
	}

	if cfg.Session.Secret == "" {
		return nil, errors.New("SESSION_SECRET must be set to sign admin sessions")
	}

	return cfg, nil
}

// getEnv returns the value of an environment variable or a default if empty.
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getEnvInt returns the value of an environment variable as an integer or a default if empty/invalid.
func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

// parseDurationEnv reads an environment variable and parses it as time.Duration.
// If the variable is empty, it falls back to the provided default value.
func parseDurationEnv(key, def string) (time.Duration, error) {
	raw := getEnv(key, def)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration must be > 0")
	}
	return d, nil
}
