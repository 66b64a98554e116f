package config

import (
	"os"
	"strconv"
	"time"

	"datelit/internal/dateutil"
)

// Config holds all configuration options for datelit
type Config struct {
	Clock       ClockConfig
	Database    DatabaseConfig
	Application ApplicationConfig
}

// ClockConfig controls where "now" comes from
type ClockConfig struct {
	// FixedNow pins the clock to these epoch seconds; nil reads the system clock.
	FixedNow *int64 `env:"DATELIT_NOW"`
}

// DatabaseConfig holds settings for the SQL evaluation surface
type DatabaseConfig struct {
	DSN          string        `env:"DATELIT_DB_DSN"`
	QueryTimeout time.Duration `env:"DATELIT_DB_QUERY_TIMEOUT"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"DATELIT_APP_TIMEOUT"`
	Verbose bool          `env:"DATELIT_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:          ":memory:",
			QueryTimeout: 5 * time.Second,
		},
		Application: ApplicationConfig{
			Timeout: 30 * time.Second,
			Verbose: false,
		},
	}
}

// NewClock returns the clock described by the configuration
func (c *Config) NewClock() dateutil.Clock {
	if c.Clock.FixedNow != nil {
		return dateutil.NewFixedClock(*c.Clock.FixedNow)
	}
	return dateutil.SystemClock{}
}

// LoadFromEnvironment loads configuration from environment variables.
// Values that fail to parse are ignored and the previous value is kept.
func (c *Config) LoadFromEnvironment() error {
	if now := os.Getenv("DATELIT_NOW"); now != "" {
		if ts, err := strconv.ParseInt(now, 10, 64); err == nil {
			c.Clock.FixedNow = &ts
		}
	}

	if dsn := os.Getenv("DATELIT_DB_DSN"); dsn != "" {
		c.Database.DSN = dsn
	}
	if timeout := os.Getenv("DATELIT_DB_QUERY_TIMEOUT"); timeout != "" {
		c.Database.QueryTimeout = ParseDurationWithFallback(timeout, c.Database.QueryTimeout)
	}

	if timeout := os.Getenv("DATELIT_APP_TIMEOUT"); timeout != "" {
		c.Application.Timeout = ParseDurationWithFallback(timeout, c.Application.Timeout)
	}
	if verbose := os.Getenv("DATELIT_APP_VERBOSE"); verbose != "" {
		c.Application.Verbose = ParseBoolWithFallback(verbose, c.Application.Verbose)
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Clock.FixedNow != nil {
		if err := dateutil.CheckTimestamp(*c.Clock.FixedNow); err != nil {
			return &ConfigError{Field: "clock.fixed_now", Message: "fixed time must be between 0000-01-01 and 9999-12-31"}
		}
	}

	if c.Database.DSN == "" {
		return &ConfigError{Field: "database.dsn", Message: "database DSN cannot be empty"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
