package config

import (
	"fmt"
	"time"

	pkgconfig "github.com/TNRIN/DRESS/pkg/config"
)

// Cart persistence backends.
const (
	CartBackendRedis  = "redis"
	CartBackendMemory = "memory"
)

// Config holds all configuration for the storefront service.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// HTTP server
	HTTPPort int `env:"HTTP_PORT" envDefault:"8080"`

	// Catalog and store settings documents
	ProductsPath string `env:"PRODUCTS_PATH" envDefault:"data/products.json"`
	SettingsPath string `env:"STORE_CONFIG_PATH" envDefault:"data/system.json"`

	// Cart persistence
	CartBackend string `env:"CART_BACKEND" envDefault:"redis"`
	RedisAddr   string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass   string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB     int    `env:"REDIS_DB" envDefault:"0"`

	// Cart TTL in hours
	CartTTL int `env:"CART_TTL_HOURS" envDefault:"24"`

	// Orders above this subtotal ship free
	FreeShippingThreshold float64 `env:"FREE_SHIPPING_THRESHOLD" envDefault:"100"`

	// Kafka
	KafkaBrokers []string `env:"KAFKA_BROKERS" envDefault:"localhost:9092" envSeparator:","`

	// CORS
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`

	// Tracing
	TracingEnabled    bool    `env:"TRACING_ENABLED" envDefault:"false"`
	OTLPEndpoint      string  `env:"OTLP_ENDPOINT" envDefault:"localhost:4318"`
	TracingSampleRate float64 `env:"TRACING_SAMPLE_RATE" envDefault:"1.0"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, fmt.Errorf("load storefront config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// CartTTLDuration returns the cart expiry window as a duration.
func (c *Config) CartTTLDuration() time.Duration {
	return time.Duration(c.CartTTL) * time.Hour
}

// validate checks configuration invariants.
func (c *Config) validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.HTTPPort)
	}
	if c.CartBackend != CartBackendRedis && c.CartBackend != CartBackendMemory {
		return fmt.Errorf("invalid cart backend: %q", c.CartBackend)
	}
	if c.CartTTL < 1 {
		return fmt.Errorf("invalid cart TTL: %d", c.CartTTL)
	}
	if c.FreeShippingThreshold < 0 {
		return fmt.Errorf("invalid free shipping threshold: %f", c.FreeShippingThreshold)
	}
	if c.TracingSampleRate < 0 || c.TracingSampleRate > 1 {
		return fmt.Errorf("invalid tracing sample rate: %f", c.TracingSampleRate)
	}
	return nil
}
