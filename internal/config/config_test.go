package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func mustLoad(t *testing.T) Config {
	t.Helper()
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	return cfg
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv(envDotEnvFile, filepath.Join(t.TempDir(), "missing.env"))

	cfg := mustLoad(t)

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.Provider != DefaultProvider {
		t.Fatalf("expected default provider %s, got %s", DefaultProvider, cfg.Provider)
	}
	if cfg.DefaultQuery != "Real Madrid" {
		t.Fatalf("expected default query Real Madrid, got %s", cfg.DefaultQuery)
	}
	if cfg.TheSportsDB.BaseURL != defaultSportsBaseURL || cfg.TheSportsDB.APIKey != "3" {
		t.Fatalf("unexpected thesportsdb defaults %+v", cfg.TheSportsDB)
	}
	if cfg.TheSportsDB.Timeout != DefaultSportsTimeout {
		t.Fatalf("expected default timeout, got %s", cfg.TheSportsDB.Timeout)
	}
	if cfg.Images.ProxyURL != DefaultImageProxy || cfg.Images.PlaceholderURL != DefaultPlaceholderURL {
		t.Fatalf("unexpected image defaults %+v", cfg.Images)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.ServiceName != defaultServiceName {
		t.Fatalf("unexpected metrics defaults %+v", cfg.Metrics)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envDotEnvFile, filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv(envPort, "5000")
	t.Setenv(envProvider, "fixture")
	t.Setenv(envDefaultQuery, "Arsenal")
	t.Setenv(envSportsBaseURL, "http://example.com/api")
	t.Setenv(envSportsAPIKey, "secret-key")
	t.Setenv(envSportsTimeout, "3s")
	t.Setenv(envImageProxy, "https://proxy.example.com/")
	t.Setenv(envMetricsOn, "false")
	t.Setenv(envLogLevel, "debug")
	t.Setenv(envLogFormat, "json")

	cfg := mustLoad(t)

	if cfg.Port != "5000" {
		t.Fatalf("expected port 5000, got %s", cfg.Port)
	}
	if cfg.Provider != "fixture" {
		t.Fatalf("expected provider fixture, got %s", cfg.Provider)
	}
	if cfg.DefaultQuery != "Arsenal" {
		t.Fatalf("expected default query override, got %s", cfg.DefaultQuery)
	}
	if cfg.TheSportsDB.BaseURL != "http://example.com/api" || cfg.TheSportsDB.APIKey != "secret-key" {
		t.Fatalf("expected thesportsdb override, got %+v", cfg.TheSportsDB)
	}
	if cfg.TheSportsDB.Timeout != 3*time.Second {
		t.Fatalf("expected timeout 3s, got %s", cfg.TheSportsDB.Timeout)
	}
	if cfg.Images.ProxyURL != "https://proxy.example.com/" {
		t.Fatalf("expected proxy override, got %s", cfg.Images.ProxyURL)
	}
	if cfg.Metrics.Enabled {
		t.Fatalf("expected metrics disabled")
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" || cfg.Logging.File != "" {
		t.Fatalf("unexpected logging config %+v", cfg.Logging)
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv(envSportsTimeout, "not-a-duration")

	cfg := mustLoad(t)

	if cfg.TheSportsDB.Timeout != DefaultSportsTimeout {
		t.Fatalf("expected default timeout on invalid value, got %s", cfg.TheSportsDB.Timeout)
	}
}

func TestLoadNonPositiveDurationFallsBack(t *testing.T) {
	t.Setenv(envSportsTimeout, "0s")

	cfg := mustLoad(t)

	if cfg.TheSportsDB.Timeout != DefaultSportsTimeout {
		t.Fatalf("expected default timeout on non-positive value, got %s", cfg.TheSportsDB.Timeout)
	}
}

func TestLoadReadsDotEnvWithoutOverridingEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("DEFAULT_TEAM_QUERY=Chelsea\nTHESPORTSDB_API_KEY=from-file\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv(envDotEnvFile, path)
	t.Setenv(envSportsAPIKey, "from-env")
	// godotenv writes into the process env; make sure the test restores it.
	t.Setenv(envDefaultQuery, "")
	os.Unsetenv(envDefaultQuery)

	cfg := mustLoad(t)

	if cfg.DefaultQuery != "Chelsea" {
		t.Fatalf("expected query from .env, got %s", cfg.DefaultQuery)
	}
	if cfg.TheSportsDB.APIKey != "from-env" {
		t.Fatalf("expected real env to win, got %s", cfg.TheSportsDB.APIKey)
	}
}

func TestLoadReportsUnreadableDotEnv(t *testing.T) {
	// a directory exists but cannot be parsed as a .env file
	dir := t.TempDir()
	t.Setenv(envDotEnvFile, dir)
	t.Setenv(envPort, "5001")

	cfg, err := Load()

	if err == nil {
		t.Fatalf("expected error for unreadable .env")
	}
	if !strings.Contains(err.Error(), dir) {
		t.Fatalf("expected error to name the file, got %v", err)
	}
	if cfg.Port != "5001" {
		t.Fatalf("expected config from env despite .env error, got port %s", cfg.Port)
	}
}
