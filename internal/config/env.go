package config

import (
	"os"
	"strconv"
	"time"
)

// GetEnvAsString reads key from the environment, returning fallback when the
// variable is unset or empty.
func GetEnvAsString(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// GetEnvAsInt parses key as an integer. Unset, empty or unparseable values
// yield the fallback.
func GetEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

// GetEnvAsDuration parses key in time.ParseDuration syntax ("24h", "30m").
// Unset, empty or unparseable values yield the fallback.
func GetEnvAsDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}
