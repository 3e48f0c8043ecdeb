package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration
type Config struct {
	WhoopClientID     string
	WhoopClientSecret string
	WhoopRedirectURI  string
	TokenCachePath    string

	HistoryDays        int
	SleepDebtCutoffMin int
	StrainAvgThreshold float64

	LogLevel       string
	RequestTimeout int // seconds
	RequestsPerSec int

	ListenAddr      string
	RefreshSchedule string // cron spec for the dashboard cache refresh
}

// Load initializes configuration from environment variables
func Load() (*Config, error) {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, relying on actual environment variables")
	}

	var cfg Config

	cfg.WhoopClientID = os.Getenv("WHOOP_CLIENT_ID")
	cfg.WhoopClientSecret = os.Getenv("WHOOP_CLIENT_SECRET")
	cfg.WhoopRedirectURI = getEnvWithDefault("WHOOP_REDIRECT_URI", "http://localhost:8080/callback")
	cfg.TokenCachePath = getEnvWithDefault("TOKEN_CACHE_PATH", ".whoop_tokens.json")

	cfg.HistoryDays = getEnvIntWithDefault("HISTORY_DAYS", 7)
	cfg.SleepDebtCutoffMin = getEnvIntWithDefault("SLEEP_DEBT_CUTOFF_MIN", 60)
	cfg.StrainAvgThreshold = getEnvFloatWithDefault("STRAIN_AVG_THRESHOLD", 12.0)

	cfg.LogLevel = getEnvWithDefault("LOG_LEVEL", "info")
	cfg.RequestTimeout = getEnvIntWithDefault("REQUEST_TIMEOUT", 30)
	cfg.RequestsPerSec = getEnvIntWithDefault("REQUESTS_PER_SEC", 5)

	cfg.ListenAddr = getEnvWithDefault("LISTEN_ADDR", ":8080")
	cfg.RefreshSchedule = getEnvWithDefault("REFRESH_SCHEDULE", "0 0 7 * * *")

	return &cfg, nil
}

// Helper functions for environment variable handling
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatWithDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
