package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays configuration from environment variables. A .env file in
// the working directory is loaded first, if present, without overriding
// variables already set in the process environment.
//
// Recognized variables:
//
//	ADDR                 HTTP bind address (e.g., ":8000")
//	SECRET_KEY           token signing secret (required to start)
//	TOKEN_TTL_MINUTES    session token lifetime, minutes
//	CLOCK_SKEW_SECONDS   expiry-check leeway, seconds
//	DATABASE_DSN         PostgreSQL DSN; empty selects the in-memory store
//	BCRYPT_COST          bcrypt cost factor
//	COOKIE_SECURE        "true" to mark the session cookie Secure
//	MODE                 "debug" or "release"
func parseEnv(config *Config) {
	_ = godotenv.Load()

	config.Addr = getEnv("ADDR", config.Addr)
	config.SecretKey = getEnv("SECRET_KEY", config.SecretKey)
	config.DatabaseDSN = getEnv("DATABASE_DSN", config.DatabaseDSN)
	config.Mode = getEnv("MODE", config.Mode)
	config.BcryptCost = getEnvAsInt("BCRYPT_COST", config.BcryptCost)
	config.CookieSecure = getEnvAsBool("COOKIE_SECURE", config.CookieSecure)

	ttlMinutes := getEnvAsInt("TOKEN_TTL_MINUTES", int(config.TokenTTL.Minutes()))
	config.TokenTTL = time.Duration(ttlMinutes) * time.Minute

	leewaySeconds := getEnvAsInt("CLOCK_SKEW_SECONDS", int(config.ClockSkewLeeway.Seconds()))
	config.ClockSkewLeeway = time.Duration(leewaySeconds) * time.Second
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
