package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Config holds the ambient settings loaded from environment variables.
// None of these change the secrets that are generated.
type Config struct {
	// AppEnv is the running environment (development/production).
	AppEnv string
	// LogLevel is the minimum slog level (debug, info, warn, error).
	LogLevel slog.Level
	// LogFormat selects the slog handler: "json" or "text".
	LogFormat string
	// OutputFormat is the default renderer: "console" or "dotenv".
	OutputFormat string
	// Check enables the HS256 probe of generated signing secrets.
	Check bool
}

func Load() *Config {
	return &Config{
		AppEnv:       getEnv("APP_ENV", "development"),
		LogLevel:     getEnvLevel("KEYGEN_LOG_LEVEL", slog.LevelWarn),
		LogFormat:    strings.ToLower(getEnv("KEYGEN_LOG_FORMAT", "json")),
		OutputFormat: strings.ToLower(getEnv("KEYGEN_OUTPUT_FORMAT", "console")),
		Check:        getEnvBool("KEYGEN_CHECK", false),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvLevel(key string, fallback slog.Level) slog.Level {
	if value, ok := os.LookupEnv(key); ok {
		var level slog.Level
		if err := level.UnmarshalText([]byte(value)); err == nil {
			return level
		}
	}
	return fallback
}
