package config

// LoggingConfig controls the structured logger.
type LoggingConfig struct {
	Level  string
	Format string
	File   string
}

func loadLogging() LoggingConfig {
	return LoggingConfig{
		Level:  envOrDefault(envLogLevel, ""),
		Format: envOrDefault(envLogFormat, ""),
		File:   envOrDefault(envLogFile, ""),
	}
}
