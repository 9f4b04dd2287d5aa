package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer          string        // Optional: issuer claim for auth tokens (default: ticklist)
	TokenTTL        time.Duration // Optional: lifetime of issued auth tokens (default: 30 days)
	TokenSecretFile string        // Optional: path to the HMAC secret for auth tokens (default: ./token_secret)
	DatabaseFile    string        // Optional: path to SQLite database file (default: ./ticklist.db)
	PepperFile      string        // Optional: path to file containing pepper for password hashing (default: ./pepper)

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Expired token sweep interval (default: 1h)
}

func LoadConfig() Config {
	return Config{
		Issuer:          getEnvOrDefault("TODO_ISSUER", "ticklist"),
		TokenTTL:        getEnvDurationOrDefault("TODO_TOKEN_TTL", 30*24*time.Hour),
		TokenSecretFile: getEnvOrDefault("TODO_TOKEN_SECRET_FILE", "token_secret"),
		DatabaseFile:    getEnvOrDefault("TODO_DATABASE_FILE", "ticklist.db"),
		PepperFile:      getEnvOrDefault("TODO_PEPPER_FILE", "pepper"),

		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
