package config

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	for _, key := range []string{"PORT", "API_KEYS", "BUNDLE_PRODUCT", "BUNDLE_SINGLE_PRICE", "BUNDLE_PRICE", "DISCOUNT_CODE_SOURCES", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Port = %s, want 8080", cfg.Server.Port)
	}
	if cfg.Promotion.Product != "Perrito" {
		t.Errorf("Promotion.Product = %s, want Perrito", cfg.Promotion.Product)
	}
	if !cfg.Promotion.BundlePrice.Equal(decimal.NewFromInt(50)) {
		t.Errorf("Promotion.BundlePrice = %s, want 50", cfg.Promotion.BundlePrice)
	}
	if len(cfg.DiscountCodes.Sources) != 0 {
		t.Errorf("DiscountCodes.Sources = %v, want none", cfg.DiscountCodes.Sources)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("API_KEYS", "caja1, caja2")
	t.Setenv("BUNDLE_PRICE", "45.50")
	t.Setenv("DISCOUNT_CODE_SOURCES", "/tmp/a.txt,https://example.com/b.gz")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("Port = %s, want 9090", cfg.Server.Port)
	}
	if len(cfg.Auth.APIKeys) != 2 || cfg.Auth.APIKeys[1] != "caja2" {
		t.Errorf("APIKeys = %v", cfg.Auth.APIKeys)
	}
	if !cfg.Promotion.BundlePrice.Equal(decimal.RequireFromString("45.5")) {
		t.Errorf("BundlePrice = %s, want 45.5", cfg.Promotion.BundlePrice)
	}
	if len(cfg.DiscountCodes.Sources) != 2 {
		t.Errorf("Sources = %v", cfg.DiscountCodes.Sources)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad log level", "LOG_LEVEL", "chatty"},
		{"bad bundle price", "BUNDLE_PRICE", "cincuenta"},
		{"negative single price", "BUNDLE_SINGLE_PRICE", "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("APP_ENV", "production")
			t.Setenv(tt.key, tt.value)

			if _, err := Load(); err == nil {
				t.Errorf("Load() with %s=%q: expected error", tt.key, tt.value)
			}
		})
	}
}
