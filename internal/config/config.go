package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Environment represents different deployment environments
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTesting     Environment = "testing"
	EnvProduction  Environment = "production"
)

// Config holds the configuration for the IBE mock server.
// Environment variables are parsed from the IBE_MOCK_ prefix.
type Config struct {
	Environment Environment `envconfig:"ENVIRONMENT" default:"development"`

	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// Currency applied to orders until a search provides one.
	DefaultCurrency string `envconfig:"DEFAULT_CURRENCY" default:"USD"`

	// Debug adds a "mock" diagnostic object to responses. It must never
	// affect stored state or pricing; strict clients that reject unknown
	// JSON properties should keep it off.
	Debug bool `envconfig:"DEBUG" default:"false"`
}

// New creates a new Config by parsing environment variables.
// Example: IBE_MOCK_HTTP_PORT, IBE_MOCK_DEBUG.
func New() (*Config, error) {
	var cfg Config

	// Pick up a local .env when present; real environment variables win.
	_ = godotenv.Load()

	if err := envconfig.Process("IBE_MOCK", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	log.Info().
		Str("environment", string(cfg.Environment)).
		Int("port", cfg.HTTPPort).
		Str("default_currency", cfg.DefaultCurrency).
		Bool("debug", cfg.Debug).
		Msg("Configuration loaded")

	return &cfg, nil
}

// NewForTesting creates a config specifically for testing.
func NewForTesting() *Config {
	return &Config{
		Environment:     EnvTesting,
		HTTPPort:        8080,
		DefaultCurrency: "USD",
		Debug:           false,
	}
}

// IsTesting returns true if the environment is set to testing
func (c *Config) IsTesting() bool {
	return c.Environment == EnvTesting
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
