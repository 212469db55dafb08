package main

import (
	"github.com/osse101/LootRoller_Go/internal/config"
	"github.com/osse101/LootRoller_Go/internal/logger"
)

// initLogger initializes the logger using centralized app configuration.
// Fields left empty fall back to logger.DefaultConfig.
func initLogger(cfg *config.Config) {
	loggerConfig := loggerConfigFrom(cfg)
	logger.InitLogger(loggerConfig)
}

func loggerConfigFrom(cfg *config.Config) logger.Config {
	return logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		cfg.AddSource(),
	).WithDefaults()
}
