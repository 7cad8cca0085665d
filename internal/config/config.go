package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    string
	Database    DatabaseConfig
	Shopify     ShopifyConfig
	Pricing     PricingConfig
	Documents   DocumentsConfig
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	Enabled  bool // DB_ENABLED: when false the session store is skipped and the static token is used
}

type ShopifyConfig struct {
	ShopDomain  string
	AccessToken string
	APIVersion  string
}

// PricingConfig controls the bulk price-update workflow
type PricingConfig struct {
	// RequireWeightUnit restricts updates to variants whose weight unit
	// matches (e.g. "GRAMS"). Empty accepts any positive weight.
	RequireWeightUnit string
	// Concurrency is the number of per-product mutations in flight at once
	Concurrency int
	// RequestTimeout bounds each Shopify call
	RequestTimeout time.Duration
	// CollectionPageSize / ProductPageSize / VariantPageSize cap the
	// two-step catalog read
	CollectionPageSize int
	ProductPageSize    int
	VariantPageSize    int
}

// DocumentsConfig is the business block printed in document headers
type DocumentsConfig struct {
	BusinessName    string
	BusinessAddress string
	BusinessCity    string
	BusinessPhone   string
	LogoURL         string
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("PRICING_CONCURRENCY", 4)
	viper.SetDefault("PRICING_REQUEST_TIMEOUT_SECONDS", 30)
	viper.SetDefault("COLLECTION_PAGE_SIZE", 50)
	viper.SetDefault("PRODUCT_PAGE_SIZE", 100)
	viper.SetDefault("VARIANT_PAGE_SIZE", 10)

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "8080"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		LogLevel:    getEnvOrViper("LOG_LEVEL", "info"),
		Database: DatabaseConfig{
			Host:     getEnvOrViper("DB_HOST", "localhost"),
			Port:     getEnvOrViper("DB_PORT", "5432"),
			User:     getEnvOrViper("DB_USER", "postgres"),
			Password: getEnvOrViper("DB_PASSWORD", "postgres"),
			DBName:   getEnvOrViper("DB_NAME", "variablepricing"),
			SSLMode:  getEnvOrViper("DB_SSLMODE", "disable"),
			Enabled:  viper.GetBool("DB_ENABLED"),
		},
		Shopify: ShopifyConfig{
			ShopDomain:  strings.TrimSpace(getEnvOrViper("SHOPIFY_SHOP_DOMAIN", "")),
			AccessToken: strings.TrimSpace(getEnvOrViper("SHOPIFY_ACCESS_TOKEN", "")),
			APIVersion:  getEnvOrViper("SHOPIFY_API_VERSION", "2025-01"),
		},
		Pricing: PricingConfig{
			RequireWeightUnit:  strings.TrimSpace(getEnvOrViper("PRICING_REQUIRE_WEIGHT_UNIT", "")),
			Concurrency:        viper.GetInt("PRICING_CONCURRENCY"),
			RequestTimeout:     time.Duration(viper.GetInt("PRICING_REQUEST_TIMEOUT_SECONDS")) * time.Second,
			CollectionPageSize: viper.GetInt("COLLECTION_PAGE_SIZE"),
			ProductPageSize:    viper.GetInt("PRODUCT_PAGE_SIZE"),
			VariantPageSize:    viper.GetInt("VARIANT_PAGE_SIZE"),
		},
		Documents: DocumentsConfig{
			BusinessName:    getEnvOrViper("BUSINESS_NAME", "Dubai Jewellers"),
			BusinessAddress: getEnvOrViper("BUSINESS_ADDRESS", "2700 N Park Dr, Unit #19"),
			BusinessCity:    getEnvOrViper("BUSINESS_CITY", "Brampton, ON L6S 0E9"),
			BusinessPhone:   getEnvOrViper("BUSINESS_PHONE", "416-465-1200"),
			LogoURL:         getEnvOrViper("BUSINESS_LOGO_URL", ""),
		},
	}

	// Validate required fields
	if cfg.Shopify.ShopDomain == "" {
		return nil, fmt.Errorf("SHOPIFY_SHOP_DOMAIN is required")
	}
	if cfg.Shopify.AccessToken == "" {
		return nil, fmt.Errorf("SHOPIFY_ACCESS_TOKEN is required")
	}
	if cfg.Pricing.Concurrency < 1 {
		cfg.Pricing.Concurrency = 1
	}

	return cfg, nil
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}
