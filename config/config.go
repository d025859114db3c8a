package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// DefaultCurrency is used when SHOPIFY_CURRENCY is not configured.
const DefaultCurrency = "USD"

// DefaultAPIVersion is the date-stamped Admin API version used when
// SHOPIFY_API_VERSION is not configured.
const DefaultAPIVersion = "2025-04"

type Config struct {
	StoreName     string   `envconfig:"SHOPIFY_STORE_NAME"`
	AccessToken   string   `envconfig:"SHOPIFY_ACCESS_TOKEN"`
	Currency      string   `envconfig:"SHOPIFY_CURRENCY"`
	APIVersion    string   `envconfig:"SHOPIFY_API_VERSION"`
	AllowedOrigin string   `envconfig:"ALLOWED_ORIGIN"`
	StoreDomains  []string `envconfig:"ALLOWED_STORE_DOMAINS"`

	RabbitMQ RabbitMQConfig
}

type RabbitMQConfig struct {
	Host     string `envconfig:"RABBITMQ_HOST"`
	User     string `envconfig:"RABBITMQ_USER"`
	Password string `envconfig:"RABBITMQ_PASSWORD"`
	Exchange string `envconfig:"RABBITMQ_EXCHANGE" default:"storefront.orders"`
}

// Enabled reports whether the optional event publication is configured.
func (r RabbitMQConfig) Enabled() bool {
	return r.Host != "" && r.User != "" && r.Password != ""
}

func Load() (*Config, error) {
	if os.Getenv("ENV") == "LOCAL" {
		_ = godotenv.Load()
	}
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.StoreName == "" || cfg.AccessToken == "" || cfg.AllowedOrigin == "" {
		return nil, errors.New("missing necessary environment variables")
	}
	if cfg.Currency == "" {
		cfg.Currency = DefaultCurrency
	}
	if cfg.APIVersion == "" {
		cfg.APIVersion = DefaultAPIVersion
	}
	return &cfg, nil
}
