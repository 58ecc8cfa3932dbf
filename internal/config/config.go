// Package config reads runtime settings from environment variables. The
// binaries load a local .env file first, so values can come from either.
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Get returns the value of key, or fallback when the variable is unset or
// blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// GetInt returns the integer value of key, or fallback when the variable is
// unset, blank, or not an integer.
func GetInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("config: invalid integer %s=%q, using %d", key, v, fallback)
		return fallback
	}

	return n
}

// GetDuration returns the duration value of key in Go duration syntax
// ("30s", "5m"), or fallback when the variable is unset, blank, or malformed.
func GetDuration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("config: invalid duration %s=%q, using %s", key, v, fallback)
		return fallback
	}

	return d
}
