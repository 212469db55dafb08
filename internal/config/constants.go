package config

// Environment variable names
const (
	EnvLootMode       = "LOOT_MODE"
	EnvStartItemLevel = "START_ITEM_LEVEL"
	EnvRNGSeed        = "RNG_SEED"
	EnvLogLevel       = "LOG_LEVEL"
	EnvLogFormat      = "LOG_FORMAT"
	EnvEnvironment    = "ENVIRONMENT"
	EnvServiceName    = "SERVICE_NAME"
	EnvVersion        = "VERSION"
	EnvMetricsSummary = "METRICS_SUMMARY"
)

// Environment names that enable source locations in logs
const (
	EnvironmentDev         = "dev"
	EnvironmentDevelopment = "development"
)

// Error context messages for wrapped errors during config loading
const (
	ErrContextParseEnv   = "failed to parse environment"
	ErrContextValidation = "invalid configuration"
)
