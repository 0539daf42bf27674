package thesportsdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/preston-bernstein/football-team-service/internal/domain/fixtures"
	"github.com/preston-bernstein/football-team-service/internal/domain/players"
	"github.com/preston-bernstein/football-team-service/internal/domain/teams"
	"github.com/preston-bernstein/football-team-service/internal/logging"
	"github.com/preston-bernstein/football-team-service/internal/providers"
)

// Config controls how the TheSportsDB client reaches the upstream API.
type Config struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client fetches teams, fixtures and squads from the TheSportsDB v1 JSON API
// and maps them to domain models.
type Client struct {
	baseURL    string
	httpClient httpDoer
	now        func() time.Time
	logger     *slog.Logger
}

// NewClient constructs a TheSportsDB client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL) + "/" + resolveAPIKey(cfg.APIKey),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		now:        time.Now,
		logger:     cfg.Logger,
	}
}

// Name identifies the provider in logs and metrics.
func (c *Client) Name() string {
	return providerName
}

// SearchTeams looks up candidate teams by name.
func (c *Client) SearchTeams(ctx context.Context, name string) ([]teams.Team, error) {
	var payload teamsResponse
	if err := c.get(ctx, providers.EndpointSearchTeams, pathSearchTeams, url.Values{"t": {name}}, &payload); err != nil {
		return nil, err
	}
	return mapTeams(payload.Teams), nil
}

// NextEvents returns the team's upcoming fixtures, soonest first.
func (c *Client) NextEvents(ctx context.Context, teamID string) ([]fixtures.Event, error) {
	var payload eventsResponse
	if err := c.get(ctx, providers.EndpointNextEvents, pathNextEvents, url.Values{"id": {teamID}}, &payload); err != nil {
		return nil, err
	}
	return mapEvents(payload.Events), nil
}

// LastEvents returns the team's most recent results, newest first.
func (c *Client) LastEvents(ctx context.Context, teamID string) ([]fixtures.Event, error) {
	var payload resultsResponse
	if err := c.get(ctx, providers.EndpointLastEvents, pathLastEvents, url.Values{"id": {teamID}}, &payload); err != nil {
		return nil, err
	}
	return mapEvents(payload.Results), nil
}

// Squad returns the team's current roster. Each call carries a fresh nonce so
// intermediaries cannot serve a stale roster.
func (c *Client) Squad(ctx context.Context, teamID string) ([]players.Player, error) {
	params := url.Values{
		"id": {teamID},
		"_":  {strconv.FormatInt(c.now().UnixMilli(), 10)},
	}
	logging.Debug(c.logger, "squad lookup", slog.String(logging.FieldTeamID, teamID))

	var payload playersResponse
	if err := c.get(ctx, providers.EndpointSquad, pathSquad, params, &payload); err != nil {
		return nil, err
	}
	return mapPlayers(payload.Player), nil
}

func (c *Client) get(ctx context.Context, endpoint, path string, params url.Values, out any) error {
	req, err := c.buildRequest(ctx, path, params)
	if err != nil {
		return fmt.Errorf("%s: %w", endpoint, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return &providers.StatusError{
			Provider:   providerName,
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode: %w", endpoint, err)
	}
	return nil
}

func (c *Client) buildRequest(ctx context.Context, path string, params url.Values) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.URL.RawQuery = params.Encode()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-store")
	return req, nil
}
