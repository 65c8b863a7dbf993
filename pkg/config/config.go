// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Loads an optional .env file, then reads server, store, and fetch settings

package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	Store  StoreConfig
	Fetch  FetchConfig
	Log    LogConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string

	// RateLimit is the per-client request budget in requests per second.
	RateLimit float64

	// RateBurst is the per-client burst allowance.
	RateBurst int
}

// StoreConfig selects and configures the key-value store backend.
type StoreConfig struct {
	// Type specifies the backend (memory/redis/sqlite)
	Type string

	Redis  RedisConfig
	SQLite SQLiteConfig
}

// RedisConfig holds Redis-specific configuration.
type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

// SQLiteConfig holds SQLite-specific configuration.
type SQLiteConfig struct {
	// Path is the database file location
	Path string
}

// FetchConfig holds the fetch pipeline's upstream endpoints and timeouts.
type FetchConfig struct {
	ConversionEndpoint string
	ProxyEndpoint      string
	DirectTimeout      time.Duration
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string

	// JSON switches the formatter to machine-readable output
	JSON bool
}

// LoadFromEnv loads configuration from the environment. A .env file in the
// working directory is read first when present; real environment variables
// win over it.
func LoadFromEnv() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:      getEnvOrDefault("PORT", "8000"),
			RateLimit: getEnvAsFloatOrDefault("RATE_LIMIT_RPS", 10),
			RateBurst: getEnvAsIntOrDefault("RATE_LIMIT_BURST", 20),
		},
		Store: StoreConfig{
			Type: getEnvOrDefault("STORE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			SQLite: SQLiteConfig{
				Path: getEnvOrDefault("SQLITE_PATH", "feedreader.db"),
			},
		},
		Fetch: FetchConfig{
			ConversionEndpoint: getEnvOrDefault("CONVERSION_ENDPOINT", "https://api.rss2json.com/v1/api.json"),
			ProxyEndpoint:      getEnvOrDefault("PROXY_ENDPOINT", "https://api.allorigins.win/get"),
			DirectTimeout:      time.Duration(getEnvAsIntOrDefault("DIRECT_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		Log: LogConfig{
			Level: getEnvOrDefault("LOG_LEVEL", "info"),
			JSON:  getEnvOrDefault("LOG_FORMAT", "text") == "json",
		},
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	switch c.Store.Type {
	case "memory":
	case "redis":
		if c.Store.Redis.Address == "" {
			return errors.New("redis address cannot be empty when using redis store")
		}
	case "sqlite":
		if c.Store.SQLite.Path == "" {
			return errors.New("sqlite path cannot be empty when using sqlite store")
		}
	default:
		return errors.New("store type must be 'memory', 'redis', or 'sqlite'")
	}

	if c.Fetch.ConversionEndpoint == "" || c.Fetch.ProxyEndpoint == "" {
		return errors.New("fetch endpoints cannot be empty")
	}
	if c.Fetch.DirectTimeout <= 0 {
		return errors.New("direct timeout must be positive")
	}

	if c.Server.RateLimit <= 0 || c.Server.RateBurst < 1 {
		return errors.New("rate limit and burst must be positive")
	}

	return nil
}
