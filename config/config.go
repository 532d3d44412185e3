// Package config provides application configuration management.
// It loads configuration from environment variables with sensible defaults.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Upstream  UpstreamConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Environment  string
}

// UpstreamConfig holds the upstream operations API configuration.
type UpstreamConfig struct {
	BaseURL          string
	APIToken         string
	Timeout          time.Duration
	RefreshOnStartup bool
}

// RedisConfig holds the summary cache configuration. Redis is optional: with
// Enabled false every summary request recomputes its totals.
type RedisConfig struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
	CacheTTL time.Duration
}

// RateLimitConfig holds the refresh endpoint throttle configuration.
type RateLimitConfig struct {
	MaxAttempts    int
	WindowDuration time.Duration
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			Environment:  getEnv("ENV", "development"),
		},
		Upstream: UpstreamConfig{
			BaseURL:          getEnv("UPSTREAM_BASE_URL", "http://localhost:8000"),
			APIToken:         getEnv("UPSTREAM_API_TOKEN", ""),
			Timeout:          getEnvAsDuration("UPSTREAM_TIMEOUT", 10*time.Second),
			RefreshOnStartup: getEnvAsBool("UPSTREAM_REFRESH_ON_STARTUP", true),
		},
		Redis: RedisConfig{
			Enabled:  getEnvAsBool("REDIS_ENABLED", true),
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			CacheTTL: getEnvAsDuration("SUMMARY_CACHE_TTL", time.Hour),
		},
		RateLimit: RateLimitConfig{
			MaxAttempts:    getEnvAsInt("REFRESH_RATE_LIMIT_MAX", 10),
			WindowDuration: getEnvAsDuration("REFRESH_RATE_LIMIT_WINDOW", time.Minute),
		},
	}
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
