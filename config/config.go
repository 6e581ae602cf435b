package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	// Server
	Port  string
	Debug bool

	// CORS
	AllowedOrigins []string

	// Timeouts
	HTTPTimeoutSeconds int

	// Dialogue engine. A non-zero seed pins template selection, which is
	// useful when reproducing reported conversations; 0 means time-seeded.
	ReplySeed int64
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:  getEnv("PORT", "8080"),
		Debug: getEnvBool("DEBUG", false),

		AllowedOrigins: getEnvList("ALLOWED_ORIGINS",
			[]string{"http://localhost:3000", "http://localhost:5173"}),

		HTTPTimeoutSeconds: getEnvInt("HTTP_TIMEOUT_SECONDS", 30),

		ReplySeed: getEnvInt64("REPLY_SEED", 0),
	}
}

// Validate checks if the configuration is usable
func (c *Config) Validate() error {
	if _, err := strconv.Atoi(c.Port); err != nil {
		return &ConfigError{Field: "PORT", Message: "PORT must be a number"}
	}
	if len(c.AllowedOrigins) == 0 {
		return &ConfigError{Field: "ALLOWED_ORIGINS", Message: "ALLOWED_ORIGINS must list at least one origin"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			list = append(list, trimmed)
		}
	}
	if len(list) == 0 {
		return defaultValue
	}
	return list
}
