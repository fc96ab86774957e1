// Package config loads the recipe service configuration from environment variables.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Cache    CacheConfig
	Auth     AuthConfig
	Database DatabaseConfig
	Shopping ShoppingConfig
	Mail     MailConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           string
	RateLimit      int
	RateWindow     time.Duration
	CORSOrigins    []string
	SwaggerUser    string
	SwaggerPass    string
	RequestTimeout time.Duration
}

// LogConfig holds logger configuration.
type LogConfig struct {
	Level  string
	Pretty bool
}

// CacheConfig holds the shopping-list cache configuration. A zero Size disables it.
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// AuthConfig holds API key configuration.
type AuthConfig struct {
	Enabled bool
	APIKeys []string
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	LogsTTL      time.Duration
	Enabled      bool
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// ShoppingConfig holds shopping-list aggregation settings.
type ShoppingConfig struct {
	// BasicIngredientsFile overrides the embedded pantry staples when set.
	BasicIngredientsFile string
	// BasicIngredientsLocales selects which locale lists are merged.
	BasicIngredientsLocales []string
	LookupConcurrency       int
}

// MailConfig holds SMTP settings for sending shopping lists.
type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Timeout  time.Duration
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			RateLimit:      getEnvInt("RATE_LIMIT", 100),
			RateWindow:     getEnvDuration("RATE_WINDOW", time.Minute),
			CORSOrigins:    parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:    getEnv("SWAGGER_USER", ""),
			SwaggerPass:    getEnv("SWAGGER_PASS", ""),
			RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnvBool("LOG_PRETTY", false),
		},
		Cache: CacheConfig{
			Size: getEnvInt("CACHE_SIZE", 1000),
			TTL:  getEnvDuration("CACHE_TTL", 5*time.Minute),
		},
		Auth: AuthConfig{
			Enabled: getEnvBool("AUTH_ENABLED", false),
			APIKeys: parseList(os.Getenv("API_KEYS")),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "recipe_service"),
			LogsTTL:                        getEnvDuration("MONGODB_LOGS_TTL", 30*24*time.Hour),
			Enabled:                        getEnvBool("MONGODB_ENABLED", false),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
		Shopping: ShoppingConfig{
			BasicIngredientsFile:    getEnv("BASIC_INGREDIENTS_FILE", ""),
			BasicIngredientsLocales: parseList(getEnv("BASIC_INGREDIENTS_LOCALES", "de,en")),
			LookupConcurrency:       getEnvInt("LOOKUP_CONCURRENCY", 4),
		},
		Mail: MailConfig{
			Host:     getEnv("SMTP_HOST", "smtp.gmail.com"),
			Port:     getEnvInt("SMTP_PORT", 587),
			Username: getEnv("SMTP_USER", os.Getenv("GMAIL_USER")),
			Password: getEnv("SMTP_PASSWORD", os.Getenv("GMAIL_APP_PASSWORD")),
			From:     getEnv("SMTP_FROM", ""),
			Timeout:  getEnvDuration("SMTP_TIMEOUT", 15*time.Second),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

// parseList splits a comma separated value, dropping blanks.
func parseList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			result = append(result, v)
		}
	}
	return result
}

func parseCORSOrigins(s string) []string {
	// Web dashboard and Expo dev server
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
		"http://localhost:8081",
		"http://localhost:19006",
	}
	if s == "" {
		return defaults
	}
	return append(defaults, parseList(s)...)
}
