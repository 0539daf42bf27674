package fixture

import (
	"context"
	"strings"
	"time"

	"github.com/preston-bernstein/football-team-service/internal/domain/fixtures"
	"github.com/preston-bernstein/football-team-service/internal/domain/players"
	"github.com/preston-bernstein/football-team-service/internal/domain/teams"
)

// Name identifies the fixture provider in logs and metrics.
const Name = "fixture"

// Provider returns a static data set useful for local runs and tests.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

// Name returns the provider name.
func (p *Provider) Name() string {
	return Name
}

// SearchTeams matches name as a case-insensitive substring of the official or
// alternate names, roughly as the upstream search does.
func (p *Provider) SearchTeams(ctx context.Context, name string) ([]teams.Team, error) {
	_ = ctx
	q := strings.ToLower(strings.TrimSpace(name))
	out := make([]teams.Team, 0)
	if q == "" {
		return out, nil
	}
	for _, t := range sampleTeams() {
		if strings.Contains(strings.ToLower(t.Name), q) || strings.Contains(strings.ToLower(t.AlternateNames), q) {
			out = append(out, t)
		}
	}
	return out, nil
}

// NextEvents returns one upcoming fixture a few days from now for known teams.
func (p *Provider) NextEvents(ctx context.Context, teamID string) ([]fixtures.Event, error) {
	_ = ctx
	team, ok := teamByID(teamID)
	if !ok {
		return []fixtures.Event{}, nil
	}
	kickoff := p.now().UTC().Truncate(24*time.Hour).AddDate(0, 0, 3).Add(20 * time.Hour)
	return []fixtures.Event{
		{
			ID:        "fixture-next-" + teamID,
			Name:      team.Name + " vs " + rivalOf(teamID),
			HomeTeam:  team.Name,
			AwayTeam:  rivalOf(teamID),
			Date:      kickoff.Format("2006-01-02"),
			Timestamp: kickoff.Format("2006-01-02T15:04:05"),
			League:    team.League,
		},
	}, nil
}

// LastEvents returns five deterministic past results, newest first.
func (p *Provider) LastEvents(ctx context.Context, teamID string) ([]fixtures.Event, error) {
	_ = ctx
	team, ok := teamByID(teamID)
	if !ok {
		return []fixtures.Event{}, nil
	}
	day := p.now().UTC().Truncate(24 * time.Hour)
	scores := []struct {
		home     bool
		my, opp  int
		opponent string
	}{
		{true, 3, 0, "Getafe"},
		{false, 1, 2, "Sevilla"},
		{false, 1, 1, "Cádiz"},
		{true, 2, 1, "Real Betis"},
		{true, 4, 0, "Granada"},
	}
	out := make([]fixtures.Event, 0, len(scores))
	for i, s := range scores {
		date := day.AddDate(0, 0, -7*(i+1)).Format("2006-01-02")
		home, away := team.Name, s.opponent
		hs, as := s.my, s.opp
		if !s.home {
			home, away = away, home
			hs, as = as, hs
		}
		out = append(out, fixtures.Event{
			ID:        "fixture-last-" + teamID + "-" + date,
			Name:      home + " vs " + away,
			HomeTeam:  home,
			AwayTeam:  away,
			Date:      date,
			League:    team.League,
			HomeScore: intPtr(hs),
			AwayScore: intPtr(as),
		})
	}
	return out, nil
}

// Squad returns a deterministic roster for known teams.
func (p *Provider) Squad(ctx context.Context, teamID string) ([]players.Player, error) {
	_ = ctx
	roster, ok := sampleSquads()[teamID]
	if !ok {
		return []players.Player{}, nil
	}
	out := make([]players.Player, len(roster))
	copy(out, roster)
	return out, nil
}

func teamByID(id string) (teams.Team, bool) {
	for _, t := range sampleTeams() {
		if t.ID == id {
			return t, true
		}
	}
	return teams.Team{}, false
}

func rivalOf(teamID string) string {
	switch teamID {
	case "133738":
		return "Barcelona"
	case "133604":
		return "Tottenham Hotspur"
	default:
		return "Opponent"
	}
}

func intPtr(v int) *int { return &v }
