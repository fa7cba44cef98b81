package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/zakatify/zakat_backend/internal/core/domain"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// Metal prices used to derive Nisab thresholds when a request carries no
	// override. Zero means "not configured"; calculations that need the price
	// then fail with a configuration error instead of a silent zero threshold.
	GoldPricePerGram   decimal.Decimal
	SilverPricePerGram decimal.Decimal

	// DefaultMadhab selects the juristic rule set for requests that do not
	// name one.
	DefaultMadhab domain.Madhab

	// RateLimit is the ulule/limiter formatted rate, e.g. "100-M".
	RateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("GOLD_PRICE_PER_GRAM", "")
	viper.SetDefault("SILVER_PRICE_PER_GRAM", "")
	viper.SetDefault("DEFAULT_MADHAB", "SHAFI")
	viper.SetDefault("RATE_LIMIT", "100-M")

	viper.AutomaticEnv()

	cfg := &Config{}
	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set. Price history endpoints will be unavailable.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	cfg.GoldPricePerGram = parsePrice("GOLD_PRICE_PER_GRAM")
	cfg.SilverPricePerGram = parsePrice("SILVER_PRICE_PER_GRAM")

	madhabStr := viper.GetString("DEFAULT_MADHAB")
	madhab, ok := domain.ParseMadhab(madhabStr)
	if !ok {
		madhab = domain.Shafi
		log.Printf("Warning: Invalid value for DEFAULT_MADHAB ('%s'). Defaulting to %s.\n", madhabStr, madhab)
	}
	cfg.DefaultMadhab = madhab

	return cfg, nil
}

func parsePrice(key string) decimal.Decimal {
	raw := viper.GetString(key)
	if raw == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		log.Printf("Warning: Invalid value for %s ('%s'). Ignoring.\n", key, raw)
		return decimal.Zero
	}
	return d
}

// ZakatConfig builds the calculation configuration from the application
// defaults.
func (c *Config) ZakatConfig() domain.ZakatConfig {
	return domain.ZakatConfig{
		GoldPricePerGram:   c.GoldPricePerGram,
		SilverPricePerGram: c.SilverPricePerGram,
		Madhab:             c.DefaultMadhab,
	}
}
