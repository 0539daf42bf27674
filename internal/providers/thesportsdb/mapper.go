package thesportsdb

import (
	"strings"

	"github.com/preston-bernstein/football-team-service/internal/domain/fixtures"
	"github.com/preston-bernstein/football-team-service/internal/domain/players"
	"github.com/preston-bernstein/football-team-service/internal/domain/teams"
)

func mapTeam(t teamResponse) teams.Team {
	return teams.Team{
		ID:              strings.TrimSpace(string(t.ID)),
		Name:            strings.TrimSpace(t.Team),
		AlternateNames:  t.Alternate,
		Stadium:         strings.TrimSpace(t.Stadium),
		StadiumLocation: strings.TrimSpace(t.StadiumLocation),
		Country:         strings.TrimSpace(t.Country),
		FormedYear:      strings.TrimSpace(string(t.FormedYear)),
		Manager:         strings.TrimSpace(t.Manager),
		Coach:           strings.TrimSpace(t.Coach),
		League:          strings.TrimSpace(t.League),
		Links: teams.Links{
			Website:   t.Website,
			Twitter:   t.Twitter,
			Instagram: t.Instagram,
			Facebook:  t.Facebook,
			YouTube:   t.Youtube,
		},
		Images: teams.Images{
			Fanart1:      t.Fanart1,
			Fanart2:      t.Fanart2,
			Fanart3:      t.Fanart3,
			Banner:       t.Banner,
			StadiumThumb: t.StadiumThumb,
		},
	}
}

func mapEvent(e eventResponse) fixtures.Event {
	return fixtures.Event{
		ID:         string(e.ID),
		Name:       e.Event,
		HomeTeam:   strings.TrimSpace(e.HomeTeam),
		AwayTeam:   strings.TrimSpace(e.AwayTeam),
		Date:       strings.TrimSpace(e.Date),
		Timestamp:  strings.TrimSpace(e.Timestamp),
		League:     strings.TrimSpace(e.League),
		Tournament: strings.TrimSpace(e.Tournament),
		HomeScore:  fixtures.ParseScore(string(e.HomeScore)),
		AwayScore:  fixtures.ParseScore(string(e.AwayScore)),
	}
}

func mapPlayer(p playerResponse) players.Player {
	return players.Player{
		ID:       string(p.ID),
		Name:     strings.TrimSpace(p.Player),
		Position: strings.TrimSpace(p.Position),
		Cutout:   strings.TrimSpace(p.Cutout),
		Thumb:    strings.TrimSpace(p.Thumb),
	}
}

func mapTeams(in []teamResponse) []teams.Team {
	out := make([]teams.Team, 0, len(in))
	for _, t := range in {
		out = append(out, mapTeam(t))
	}
	return out
}

func mapEvents(in []eventResponse) []fixtures.Event {
	out := make([]fixtures.Event, 0, len(in))
	for _, e := range in {
		out = append(out, mapEvent(e))
	}
	return out
}

func mapPlayers(in []playerResponse) []players.Player {
	out := make([]players.Player, 0, len(in))
	for _, p := range in {
		out = append(out, mapPlayer(p))
	}
	return out
}
