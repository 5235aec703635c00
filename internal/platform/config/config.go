package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	// RateLimit is a ulule/limiter rate expression, e.g. "100-M".
	RateLimit string

	// BudgetAlertPercent is the user-adjustable cost-variance alert threshold.
	// The reconciliation engine receives it as input; it is never hard-coded.
	BudgetAlertPercent decimal.Decimal
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("BUDGET_ALERT_THRESHOLD", "10")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	thresholdStr := viper.GetString("BUDGET_ALERT_THRESHOLD")
	threshold, err := decimal.NewFromString(thresholdStr)
	if err != nil {
		return nil, fmt.Errorf("invalid BUDGET_ALERT_THRESHOLD %q: %w", thresholdStr, err)
	}
	if threshold.IsNegative() {
		return nil, fmt.Errorf("BUDGET_ALERT_THRESHOLD must not be negative, got %s", thresholdStr)
	}
	cfg.BudgetAlertPercent = threshold

	return cfg, nil
}
