// Package config reads runtime settings from the environment.
package config

import (
	"os"
	"strconv"
)

// Get returns the value of an environment variable, or the fallback
// when it is unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetInt is Get for integer settings. Unparsable values fall back.
func GetInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
