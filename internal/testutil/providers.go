package testutil

import (
	"context"
	"sync"

	"github.com/preston-bernstein/football-team-service/internal/domain/fixtures"
	"github.com/preston-bernstein/football-team-service/internal/domain/players"
	"github.com/preston-bernstein/football-team-service/internal/domain/teams"
	"github.com/preston-bernstein/football-team-service/internal/providers"
)

// StubProvider serves canned data and counts calls per endpoint.
// Set fields before the first call; they are read without locking.
type StubProvider struct {
	// Teams maps a search query to its candidates.
	Teams map[string][]teams.Team
	Next   []fixtures.Event
	Last   []fixtures.Event
	Roster []players.Player

	// ErrAt names the endpoint that fails with Err.
	ErrAt string
	Err   error

	// Gates blocks a lookup until its channel is closed. Keys come from
	// GateKey: the endpoint plus the query (search) or team id (the rest).
	// Entered, when set, receives the key once the lookup is blocked.
	Gates   map[string]chan struct{}
	Entered chan string

	mu    sync.Mutex
	calls map[string]int
}

// NewStubProvider returns an empty stub.
func NewStubProvider() *StubProvider {
	return &StubProvider{
		Teams: map[string][]teams.Team{},
		Gates: map[string]chan struct{}{},
		calls: map[string]int{},
	}
}

// GateKey names the lookup of endpoint for arg in StubProvider.Gates.
func GateKey(endpoint, arg string) string {
	return endpoint + ":" + arg
}

// Calls returns how often endpoint was hit.
func (s *StubProvider) Calls(endpoint string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[endpoint]
}

func (s *StubProvider) record(endpoint string) error {
	s.mu.Lock()
	if s.calls == nil {
		s.calls = map[string]int{}
	}
	s.calls[endpoint]++
	s.mu.Unlock()
	if s.ErrAt == endpoint {
		return s.Err
	}
	return nil
}

// hold blocks while the lookup's gate is open.
func (s *StubProvider) hold(ctx context.Context, endpoint, arg string) error {
	key := GateKey(endpoint, arg)
	gate := s.Gates[key]
	if gate == nil {
		return nil
	}
	if s.Entered != nil {
		s.Entered <- key
	}
	select {
	case <-gate:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *StubProvider) SearchTeams(ctx context.Context, name string) ([]teams.Team, error) {
	if err := s.hold(ctx, providers.EndpointSearchTeams, name); err != nil {
		return nil, err
	}
	if err := s.record(providers.EndpointSearchTeams); err != nil {
		return nil, err
	}
	return s.Teams[name], nil
}

func (s *StubProvider) NextEvents(ctx context.Context, teamID string) ([]fixtures.Event, error) {
	if err := s.hold(ctx, providers.EndpointNextEvents, teamID); err != nil {
		return nil, err
	}
	if err := s.record(providers.EndpointNextEvents); err != nil {
		return nil, err
	}
	return s.Next, nil
}

func (s *StubProvider) LastEvents(ctx context.Context, teamID string) ([]fixtures.Event, error) {
	if err := s.hold(ctx, providers.EndpointLastEvents, teamID); err != nil {
		return nil, err
	}
	if err := s.record(providers.EndpointLastEvents); err != nil {
		return nil, err
	}
	return s.Last, nil
}

func (s *StubProvider) Squad(ctx context.Context, teamID string) ([]players.Player, error) {
	if err := s.hold(ctx, providers.EndpointSquad, teamID); err != nil {
		return nil, err
	}
	if err := s.record(providers.EndpointSquad); err != nil {
		return nil, err
	}
	return s.Roster, nil
}
