package providers

import (
	"context"

	"github.com/preston-bernstein/football-team-service/internal/domain/fixtures"
	"github.com/preston-bernstein/football-team-service/internal/domain/players"
	"github.com/preston-bernstein/football-team-service/internal/domain/teams"
)

// Endpoint names used for logs, metrics and wrapped errors.
const (
	EndpointSearchTeams = "search_teams"
	EndpointNextEvents  = "next_events"
	EndpointLastEvents  = "last_events"
	EndpointSquad       = "squad"
)

// TeamSearcher finds candidate teams by free-text name.
// An empty result is not an error.
type TeamSearcher interface {
	SearchTeams(ctx context.Context, name string) ([]teams.Team, error)
}

// FixtureProvider fetches upcoming and past fixtures for a team id, most relevant first.
type FixtureProvider interface {
	NextEvents(ctx context.Context, teamID string) ([]fixtures.Event, error)
	LastEvents(ctx context.Context, teamID string) ([]fixtures.Event, error)
}

// SquadProvider fetches the current roster for a team id.
type SquadProvider interface {
	Squad(ctx context.Context, teamID string) ([]players.Player, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	TeamSearcher
	FixtureProvider
	SquadProvider
}
