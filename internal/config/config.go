// Package config provides configuration management for the welcome service.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Greeting  GreetingConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
	Log       LogConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port            string
	ShutdownTimeout time.Duration
}

// GreetingConfig holds greeting router configuration
type GreetingConfig struct {
	Prefix      string // Mount prefix for the greeting routes
	EscapeNames bool   // HTML escape names before echoing them
}

// RateLimitConfig holds per-IP rate limiting configuration
type RateLimitConfig struct {
	Limit  int64 // Requests allowed per period, 0 (the default) disables limiting
	Period time.Duration
}

// CORSConfig holds cross-origin configuration
type CORSConfig struct {
	AllowOrigins []string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // zerolog level name
	Format string // "json" or "console"
}

// Log formats
const (
	LogFormatJSON    = "json"
	LogFormatConsole = "console"
)

// Load loads and validates configuration from environment variables
func Load() (*Config, error) {
	cfg := FromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// FromEnv reads configuration from environment variables without validating
// it, so callers can apply overrides before calling Validate.
func FromEnv() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "3000"),
			ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", "5s"),
		},
		Greeting: GreetingConfig{
			Prefix:      getEnv("GREETING_PREFIX", "/welcome"),
			EscapeNames: getEnvAsBool("GREETING_ESCAPE_NAMES", false),
		},
		RateLimit: RateLimitConfig{
			Limit:  getEnvAsInt64("RATE_LIMIT", 0),
			Period: getEnvAsDuration("RATE_LIMIT_PERIOD", "1m"),
		},
		CORS: CORSConfig{
			AllowOrigins: getEnvAsList("CORS_ALLOW_ORIGINS", []string{"*"}),
		},
		Log: LogConfig{
			Level:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnv("LOG_FORMAT", LogFormatJSON)),
		},
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Server.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("PORT must be a number between 1 and 65535, got %q", c.Server.Port)
	}
	if strings.ContainsAny(c.Greeting.Prefix, ":*") {
		return fmt.Errorf("GREETING_PREFIX must not contain route wildcards, got %q", c.Greeting.Prefix)
	}
	if c.RateLimit.Limit < 0 {
		return errors.New("RATE_LIMIT must not be negative")
	}
	if c.RateLimit.Limit > 0 && c.RateLimit.Period <= 0 {
		return errors.New("RATE_LIMIT_PERIOD must be positive when rate limiting is enabled")
	}
	// ParseLevel accepts "" as NoLevel, which would log everything
	if c.Log.Level == "" {
		return errors.New("LOG_LEVEL must not be empty")
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	if c.Log.Format != LogFormatJSON && c.Log.Format != LogFormatConsole {
		return fmt.Errorf("LOG_FORMAT must be %q or %q, got %q", LogFormatJSON, LogFormatConsole, c.Log.Format)
	}
	return nil
}

// Addr returns the listen address for the configured port
func (s *ServerConfig) Addr() string {
	return ":" + s.Port
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvAsInt64 gets an environment variable as an integer or returns a default value
func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsBool gets an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration gets an environment variable as a duration or returns a default value
func getEnvAsDuration(key, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		defaultDuration, _ := time.ParseDuration(defaultValue)
		return defaultDuration
	}
	return value
}

// getEnvAsList gets a comma separated environment variable or returns a default value
func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	var values []string
	for _, v := range strings.Split(valueStr, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return defaultValue
	}
	return values
}
