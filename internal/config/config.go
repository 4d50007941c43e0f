// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"bankist/pkg/db" // Import db package for its Config struct
)

// Seed sources understood by SEED_SOURCE.
const (
	SeedSourceStatic   = "static"
	SeedSourcePostgres = "postgres"
)

// AppConfig holds all application-wide configurations.
type AppConfig struct {
	ServerPort     string
	LogLevel       string
	SeedSource     string
	RequestTimeout time.Duration
	RateLimit      RateLimitConfig
	DB             db.Config
}

// RateLimitConfig configures the per-IP limiter in front of the bank commands.
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// LoadConfig loads configuration from environment variables.
// It returns an AppConfig instance or an error if any variable is invalid.
func LoadConfig() (*AppConfig, error) {
	seedSource := getEnv("SEED_SOURCE", SeedSourceStatic)
	if seedSource != SeedSourceStatic && seedSource != SeedSourcePostgres {
		return nil, fmt.Errorf("invalid SEED_SOURCE %q: want %s or %s", seedSource, SeedSourceStatic, SeedSourcePostgres)
	}

	requestTimeout, err := time.ParseDuration(getEnv("REQUEST_TIMEOUT", "15s"))
	if err != nil {
		return nil, fmt.Errorf("invalid REQUEST_TIMEOUT: %w", err)
	}
	if requestTimeout <= 0 {
		return nil, fmt.Errorf("invalid REQUEST_TIMEOUT: must be positive")
	}

	rps, err := strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "5"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_RPS: %w", err)
	}
	if rps <= 0 {
		return nil, fmt.Errorf("invalid RATE_LIMIT_RPS: must be positive")
	}
	burst, err := strconv.Atoi(getEnv("RATE_LIMIT_BURST", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_BURST: %w", err)
	}
	if burst < 1 {
		return nil, fmt.Errorf("invalid RATE_LIMIT_BURST: must be at least 1")
	}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	return &AppConfig{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		SeedSource:     seedSource,
		RequestTimeout: requestTimeout,
		RateLimit: RateLimitConfig{
			RequestsPerSecond: rps,
			Burst:             burst,
		},
		DB: db.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     dbPort,
			User:     getEnv("DB_USER", "user"),
			Password: getEnv("DB_PASSWORD", "password"),
			DBName:   getEnv("DB_NAME", "bankist"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
