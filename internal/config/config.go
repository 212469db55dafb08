package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/osse101/LootRoller_Go/internal/domain"
)

// Config holds the application configuration
type Config struct {
	Mode           string `env:"LOOT_MODE" envDefault:"weapon" validate:"oneof=weapon equipment"`
	StartItemLevel int    `env:"START_ITEM_LEVEL" envDefault:"100" validate:"gte=0"`
	RNGSeed        int64  `env:"RNG_SEED" envDefault:"0"` // 0 seeds from the global source
	MetricsSummary bool   `env:"METRICS_SUMMARY" envDefault:"false"`

	LogLevel    string `env:"LOG_LEVEL" envDefault:"warn" validate:"oneof=debug info warn warning error DEBUG INFO WARN WARNING ERROR"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev" validate:"required"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"loot-roller" validate:"required"`
	Version     string `env:"VERSION" envDefault:"dev"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextParseEnv, err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LootMode returns the configured mode as a domain value
func (c *Config) LootMode() domain.Mode {
	return domain.Mode(c.Mode)
}

// AddSource reports whether log lines should carry source locations
func (c *Config) AddSource() bool {
	return c.Environment == EnvironmentDev || c.Environment == EnvironmentDevelopment
}
