package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port               int
	DevMode            bool
	DatabasePath       string
	LogLevel           string
	MinRiskFreeRate    float64 // Lower bound for accepted risk-free interest rates
	MaxRiskFreeRate    float64 // Upper bound for accepted risk-free interest rates
	DefaultCorrelation float64
	MaxDurationMonths  int // Upper bound for a single simulation horizon
	RunRetentionDays   int // Persisted simulation runs older than this get pruned
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Port:               getEnvAsInt("PORT", 8010),
		DevMode:            getEnvAsBool("DEV_MODE", false),
		DatabasePath:       getEnv("DATABASE_PATH", "./data/plutus.db"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		MinRiskFreeRate:    getEnvAsFloat("MIN_RISK_FREE_RATE", 0.0),
		MaxRiskFreeRate:    getEnvAsFloat("MAX_RISK_FREE_RATE", 0.20),
		DefaultCorrelation: getEnvAsFloat("DEFAULT_CORRELATION", 0.6),
		MaxDurationMonths:  getEnvAsInt("MAX_DURATION_MONTHS", 1200),
		RunRetentionDays:   getEnvAsInt("RUN_RETENTION_DAYS", 90),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if configuration values are coherent
func (c *Config) Validate() error {
	if c.DatabasePath == "" {
		return fmt.Errorf("DATABASE_PATH is required")
	}
	if c.MinRiskFreeRate > c.MaxRiskFreeRate {
		return fmt.Errorf("MIN_RISK_FREE_RATE (%.4f) exceeds MAX_RISK_FREE_RATE (%.4f)",
			c.MinRiskFreeRate, c.MaxRiskFreeRate)
	}
	if c.DefaultCorrelation < -1 || c.DefaultCorrelation > 1 {
		return fmt.Errorf("DEFAULT_CORRELATION must be in [-1, 1], got %.4f", c.DefaultCorrelation)
	}
	if c.MaxDurationMonths < 0 {
		return fmt.Errorf("MAX_DURATION_MONTHS must be >= 0")
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
