package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/football-team-service/internal/domain/fixtures"
	"github.com/preston-bernstein/football-team-service/internal/domain/players"
	"github.com/preston-bernstein/football-team-service/internal/domain/teams"
	"github.com/preston-bernstein/football-team-service/internal/logging"
	"github.com/preston-bernstein/football-team-service/internal/metrics"
)

// instrumentedProvider records lookup metrics and logs failed lookups.
type instrumentedProvider struct {
	inner    DataProvider
	name     string
	logger   *slog.Logger
	recorder *metrics.Recorder
	now      func() time.Time
}

// NewInstrumentedProvider wraps inner so every lookup is timed and counted under name.
// A nil recorder or logger disables that side.
func NewInstrumentedProvider(inner DataProvider, name string, logger *slog.Logger, recorder *metrics.Recorder) DataProvider {
	return &instrumentedProvider{
		inner:    inner,
		name:     name,
		logger:   logger,
		recorder: recorder,
		now:      time.Now,
	}
}

func (p *instrumentedProvider) SearchTeams(ctx context.Context, name string) ([]teams.Team, error) {
	start := p.now()
	out, err := p.inner.SearchTeams(ctx, name)
	p.observe(ctx, EndpointSearchTeams, start, len(out), err, slog.String(logging.FieldQuery, name))
	return out, err
}

func (p *instrumentedProvider) NextEvents(ctx context.Context, teamID string) ([]fixtures.Event, error) {
	start := p.now()
	out, err := p.inner.NextEvents(ctx, teamID)
	p.observe(ctx, EndpointNextEvents, start, len(out), err, slog.String(logging.FieldTeamID, teamID))
	return out, err
}

func (p *instrumentedProvider) LastEvents(ctx context.Context, teamID string) ([]fixtures.Event, error) {
	start := p.now()
	out, err := p.inner.LastEvents(ctx, teamID)
	p.observe(ctx, EndpointLastEvents, start, len(out), err, slog.String(logging.FieldTeamID, teamID))
	return out, err
}

func (p *instrumentedProvider) Squad(ctx context.Context, teamID string) ([]players.Player, error) {
	start := p.now()
	out, err := p.inner.Squad(ctx, teamID)
	p.observe(ctx, EndpointSquad, start, len(out), err, slog.String(logging.FieldTeamID, teamID))
	return out, err
}

func (p *instrumentedProvider) observe(ctx context.Context, endpoint string, start time.Time, count int, err error, attrs ...any) {
	duration := p.now().Sub(start)
	p.recorder.RecordLookup(p.name, endpoint, duration, err)

	attrs = append(attrs,
		slog.String(logging.FieldEndpoint, endpoint),
		slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
	)
	if err != nil {
		if se, ok := AsStatusError(err); ok {
			attrs = append(attrs, slog.Int(logging.FieldStatusCode, se.StatusCode))
		}
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.name, "provider lookup failed", append(attrs, "err", err)...)
		return
	}
	logWithProvider(ctx, p.logger, slog.LevelDebug, p.name, "provider lookup", append(attrs, slog.Int(logging.FieldCount, count))...)
}
