package config

import "time"

// TheSportsDBConfig controls how we talk to the TheSportsDB API.
type TheSportsDBConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

func loadTheSportsDB() TheSportsDBConfig {
	return TheSportsDBConfig{
		BaseURL: envOrDefault(envSportsBaseURL, defaultSportsBaseURL),
		APIKey:  envOrDefault(envSportsAPIKey, defaultSportsAPIKey),
		Timeout: durationEnvOrDefault(envSportsTimeout, DefaultSportsTimeout),
	}
}
