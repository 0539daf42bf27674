package config

import "fmt"

// Config holds runtime configuration for the server and CLI.
type Config struct {
	Port         string
	Provider     string
	DefaultQuery string
	TheSportsDB  TheSportsDBConfig
	Images       ImagesConfig
	Metrics      MetricsConfig
	Logging      LoggingConfig
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file, when present, is applied first without overriding real env vars.
// A missing file is fine; one that cannot be read or parsed is an error, and
// the returned Config then reflects the environment alone.
func Load() (Config, error) {
	path := envOrDefault(envDotEnvFile, defaultDotEnvFile)
	dotEnvErr := loadDotEnv(path)

	cfg := Config{
		Port:         envOrDefault(envPort, defaultPort),
		Provider:     envOrDefault(envProvider, DefaultProvider),
		DefaultQuery: envOrDefault(envDefaultQuery, DefaultTeamQuery),
		TheSportsDB:  loadTheSportsDB(),
		Images:       loadImages(),
		Metrics:      loadMetrics(),
		Logging:      loadLogging(),
	}
	if dotEnvErr != nil {
		return cfg, fmt.Errorf("load %s: %w", path, dotEnvErr)
	}
	return cfg, nil
}
