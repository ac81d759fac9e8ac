// Package config holds CLI defaults that can be overridden from the environment.
package config

import "os"

// Environment variables read by Load.
const (
	EnvLogLevel  = "LOGSCHEMA_LOG_LEVEL"
	EnvLogFormat = "LOGSCHEMA_LOG_FORMAT"
	EnvOutput    = "LOGSCHEMA_OUTPUT"
)

// Config holds CLI settings. Flags override these values.
type Config struct {
	LogLevel  string // "debug", "info", "warn", "error"
	LogFormat string // "text", "json"
	Output    string // "jsonl", "pretty"
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	return Config{
		LogLevel:  getenv(EnvLogLevel, "warn"),
		LogFormat: getenv(EnvLogFormat, "text"),
		Output:    getenv(EnvOutput, "pretty"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
