package server

import (
	"log/slog"

	"github.com/preston-bernstein/football-team-service/internal/config"
	"github.com/preston-bernstein/football-team-service/internal/providers"
	"github.com/preston-bernstein/football-team-service/internal/providers/fixture"
	"github.com/preston-bernstein/football-team-service/internal/providers/thesportsdb"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.DataProvider {
	switch normalizeProviderName(cfg.Provider, nil) {
	case "thesportsdb", "":
		return thesportsdb.NewClient(thesportsdb.Config{
			BaseURL: cfg.TheSportsDB.BaseURL,
			APIKey:  cfg.TheSportsDB.APIKey,
			Timeout: cfg.TheSportsDB.Timeout,
			Logger:  logger,
		})
	case fixture.Name:
		return fixture.New()
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}
