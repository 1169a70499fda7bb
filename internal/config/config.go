package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config holds all configuration for the application
// Following 12-factor app principles, all config is loaded from environment variables
type Config struct {
	Server        ServerConfig
	Auth          AuthConfig
	Promotion     PromotionConfig
	DiscountCodes DiscountCodeConfig
	LogLevel      string
}

type ServerConfig struct {
	Port            string
	Host            string
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

type AuthConfig struct {
	APIKeys []string // Valid API keys for cashier endpoints
}

// PromotionConfig holds the two-for-one offer
type PromotionConfig struct {
	Product     string
	SinglePrice decimal.Decimal
	BundlePrice decimal.Decimal
}

type DiscountCodeConfig struct {
	Sources []string // Local paths or URLs; empty disables discount codes
}

// Load reads configuration from environment variables.
// Outside production a .env file in the working directory is applied first.
func Load() (*Config, error) {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	singlePrice, err := getEnvAsDecimal("BUNDLE_SINGLE_PRICE", decimal.NewFromInt(30))
	if err != nil {
		return nil, err
	}
	bundlePrice, err := getEnvAsDecimal("BUNDLE_PRICE", decimal.NewFromInt(50))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			ReadTimeout:     getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout:    getEnvAsInt("WRITE_TIMEOUT", 15),
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 30),
		},
		Auth: AuthConfig{
			APIKeys: getEnvAsSlice("API_KEYS", []string{"apitest"}),
		},
		Promotion: PromotionConfig{
			Product:     getEnv("BUNDLE_PRODUCT", "Perrito"),
			SinglePrice: singlePrice,
			BundlePrice: bundlePrice,
		},
		DiscountCodes: DiscountCodeConfig{
			Sources: getEnvAsSlice("DISCOUNT_CODE_SOURCES", nil),
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if len(c.Auth.APIKeys) == 0 {
		return fmt.Errorf("at least one API key must be configured")
	}

	if c.Promotion.Product == "" {
		return fmt.Errorf("BUNDLE_PRODUCT is required")
	}

	if c.Promotion.SinglePrice.IsNegative() || c.Promotion.BundlePrice.IsNegative() {
		return fmt.Errorf("promotion prices must not be negative")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
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

// getEnvAsDecimal fails on malformed prices rather than silently using the default
func getEnvAsDecimal(key string, defaultValue decimal.Decimal) (decimal.Decimal, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := decimal.NewFromString(strings.TrimSpace(valueStr))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s: %w", key, err)
	}
	return value, nil
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	parts := strings.Split(valueStr, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
