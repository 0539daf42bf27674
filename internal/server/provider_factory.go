package server

import (
	"log/slog"

	"github.com/preston-bernstein/football-team-service/internal/config"
	"github.com/preston-bernstein/football-team-service/internal/metrics"
	"github.com/preston-bernstein/football-team-service/internal/providers"
)

// providerFactory assembles the provider with shared instrumentation.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.DataProvider {
	return f.wrap(selectProvider(cfg, f.logger))
}

func (f providerFactory) wrap(base providers.DataProvider) providers.DataProvider {
	return providers.NewInstrumentedProvider(base, normalizeProviderName("", base), f.logger, f.metrics)
}
