package cli

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/preston-bernstein/football-team-service/internal/card"
	"github.com/preston-bernstein/football-team-service/internal/config"
	"github.com/preston-bernstein/football-team-service/internal/logging"
	"github.com/preston-bernstein/football-team-service/internal/metrics"
	"github.com/preston-bernstein/football-team-service/internal/providers"
	"github.com/preston-bernstein/football-team-service/internal/providers/fixture"
	"github.com/preston-bernstein/football-team-service/internal/providers/thesportsdb"
	"github.com/preston-bernstein/football-team-service/internal/sequencer"
)

const (
	keyBaseURL        = "base-url"
	keyAPIKey         = "api-key"
	keyProvider       = "provider"
	keyImageProxy     = "image-proxy"
	keyPlaceholderURL = "placeholder-url"
	keyOutput         = "output"
	keyTimeout        = "timeout"
	keyLogLevel       = "log-level"
	keyQuery          = "query"

	outputText = "text"
	outputJSON = "json"
)

type settings struct {
	BaseURL        string
	APIKey         string
	Provider       string
	ImageProxy     string
	PlaceholderURL string
	Output         string
	Timeout        time.Duration
	LogLevel       string
}

func loadSettings(v *viper.Viper) settings {
	return settings{
		BaseURL:        v.GetString(keyBaseURL),
		APIKey:         v.GetString(keyAPIKey),
		Provider:       strings.ToLower(strings.TrimSpace(v.GetString(keyProvider))),
		ImageProxy:     v.GetString(keyImageProxy),
		PlaceholderURL: v.GetString(keyPlaceholderURL),
		Output:         strings.ToLower(strings.TrimSpace(v.GetString(keyOutput))),
		Timeout:        v.GetDuration(keyTimeout),
		LogLevel:       v.GetString(keyLogLevel),
	}
}

// logger writes to w, which is stderr in practice so card output stays clean.
func (s settings) logger(w io.Writer) *slog.Logger {
	return logging.NewLogger(logging.Config{
		Level:   s.LogLevel,
		Service: "teamcard",
		Version: Version,
		Output:  w,
	})
}

func (s settings) provider(logger *slog.Logger) providers.DataProvider {
	var base providers.DataProvider
	name := s.Provider
	switch name {
	case fixture.Name:
		base = fixture.New()
	case config.DefaultProvider, "":
		name = config.DefaultProvider
		base = thesportsdb.NewClient(thesportsdb.Config{
			BaseURL: s.BaseURL,
			APIKey:  s.APIKey,
			Timeout: s.Timeout,
			Logger:  logger,
		})
	default:
		logging.Warn(logger, "unknown provider, falling back to fixture", slog.String(logging.FieldProvider, s.Provider))
		name = fixture.Name
		base = fixture.New()
	}
	return providers.NewInstrumentedProvider(base, name, logger, nil)
}

func (s settings) sequencerConfig(logger *slog.Logger, recorder *metrics.Recorder) sequencer.Config {
	return sequencer.Config{
		Provider: s.provider(logger),
		Builder:  card.NewBuilder(card.Options{
			ProxyURL:       s.ImageProxy,
			PlaceholderURL: s.PlaceholderURL,
		}),
		Logger:   logger,
		Recorder: recorder,
	}
}
