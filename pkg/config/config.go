package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	apperrors "userroster/pkg/errors"
)

const (
	defaultDatabaseURL = "http://localhost:5984/users"
	defaultCacheTTL    = 300
	defaultLogLevel    = "info"

	// minCacheTTL is the smallest TTL accepted when caching is enabled
	minCacheTTL = 60
)

// acceptedSchemes are the URL scheme prefixes the storage layer understands.
// The check is a prefix match only; no further parsing happens here.
var acceptedSchemes = []string{
	"http://",
	"https://",
	"postgres://",
	"mysql://",
}

// CacheSettings holds the cache policy for loaded user data
type CacheSettings struct {
	Enabled bool `json:"enabled"`
	TTL     int  `json:"ttl"` // seconds
}

// Config holds all application configuration
type Config struct {
	// Storage configuration
	DatabaseURL string `json:"database_url" validate:"required,url"`

	// Cache configuration
	Cache CacheSettings `json:"cache"`

	// Application settings
	LogLevel string `json:"log_level"`
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	config := &Config{
		DatabaseURL: getEnvOrDefault("DATABASE_URL", defaultDatabaseURL),
		Cache: CacheSettings{
			Enabled: getEnvBoolOrDefault("CACHE_ENABLED", true),
			TTL:     getEnvIntOrDefault("CACHE_TTL", defaultCacheTTL),
		},
		LogLevel: getEnvOrDefault("LOG_LEVEL", defaultLogLevel),
	}

	return config, nil
}

// IsValidDatabaseURL reports whether url starts with an accepted scheme.
// It performs no network check and no parsing beyond the prefix.
func IsValidDatabaseURL(url string) bool {
	for _, scheme := range acceptedSchemes {
		if strings.HasPrefix(url, scheme) {
			return true
		}
	}
	return false
}

// Validate validates the configuration. Checks run before any storage
// connection is attempted and fail fast on the first violation.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("%w: database URL is required", apperrors.ErrInvalidConfig)
	}
	if !IsValidDatabaseURL(c.DatabaseURL) {
		return fmt.Errorf("%w: unsupported database URL scheme: %s", apperrors.ErrInvalidConfig, c.DatabaseURL)
	}
	if err := c.Cache.validate(); err != nil {
		return err
	}
	return nil
}

// validate enforces the cache TTL policy: an enabled cache needs a TTL of
// at least minCacheTTL seconds.
func (s CacheSettings) validate() error {
	if !s.Enabled {
		return nil
	}
	if s.TTL < minCacheTTL {
		return fmt.Errorf("%w: cache TTL must be at least %d seconds, got %d", apperrors.ErrInvalidConfig, minCacheTTL, s.TTL)
	}
	return nil
}

// Helper functions
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
