package config

import (
	"fmt"

	pkgconfig "github.com/palmnatthakarn/Admin-Dashboard/pkg/config"
)

// Config holds all configuration for the catalog API.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// HTTP server
	Port int `env:"PORT" envDefault:"3000"`

	// Catalog data
	ProductsPath string `env:"PRODUCTS_PATH" envDefault:"assets/products_real.json"`
	MaxPerPage   int    `env:"MAX_PER_PAGE" envDefault:"200"`

	// Cache-Control max-age for the read endpoints, in seconds. Short,
	// since prices are mutable at runtime.
	CacheMaxAgeSeconds int `env:"CACHE_MAX_AGE_SECONDS" envDefault:"30"`

	// OpenTelemetry
	OTELEnabled    bool    `env:"OTEL_ENABLED" envDefault:"false"`
	OTELEndpoint   string  `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:"localhost:4318"`
	OTELSampleRate float64 `env:"OTEL_SAMPLE_RATE" envDefault:"1.0"`

	// Pprof debug endpoints (IP allowlist in CIDR notation)
	PprofAllowedCIDRs []string `env:"PPROF_ALLOWED_CIDRS" envDefault:"127.0.0.0/8,::1/128" envSeparator:","`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, fmt.Errorf("load catalog config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate checks configuration invariants.
func (c *Config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.MaxPerPage < 1 {
		return fmt.Errorf("MAX_PER_PAGE must be positive, got %d", c.MaxPerPage)
	}
	if c.ProductsPath == "" {
		return fmt.Errorf("PRODUCTS_PATH is required")
	}
	if c.OTELSampleRate < 0 || c.OTELSampleRate > 1.0 {
		return fmt.Errorf("OTEL_SAMPLE_RATE must be between 0.0 and 1.0, got %f", c.OTELSampleRate)
	}
	return nil
}
