package card

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/football-team-service/internal/domain/fixtures"
	"github.com/preston-bernstein/football-team-service/internal/domain/teams"
)

// Letter is a single match outcome from the team's point of view.
type Letter string

const (
	Win     Letter = "W"
	Loss    Letter = "L"
	Draw    Letter = "D"
	Unknown Letter = "-"
)

// ResultLetter compares goals scored and conceded. Either side missing yields Unknown.
func ResultLetter(my, opp *int) Letter {
	if my == nil || opp == nil {
		return Unknown
	}
	switch {
	case *my > *opp:
		return Win
	case *my < *opp:
		return Loss
	default:
		return Draw
	}
}

// FormFor builds form entries for the first FormLimit events.
func FormFor(team teams.Team, events []fixtures.Event) []FormEntry {
	if len(events) > FormLimit {
		events = events[:FormLimit]
	}
	out := make([]FormEntry, 0, len(events))
	for _, ev := range events {
		my, opp := ev.AwayScore, ev.HomeScore
		if isHome(team, ev) {
			my, opp = ev.HomeScore, ev.AwayScore
		}
		out = append(out, FormEntry{
			Letter: ResultLetter(my, opp),
			Event:  ev.Name,
			Date:   ev.Date,
			Score:  fmt.Sprintf("%s-%s", scoreLabel(my), scoreLabel(opp)),
		})
	}
	return out
}

// Letters flattens form entries to their outcome letters.
func Letters(form []FormEntry) []Letter {
	out := make([]Letter, 0, len(form))
	for _, f := range form {
		out = append(out, f.Letter)
	}
	return out
}

// NextMatchFor summarises ev relative to team.
func NextMatchFor(team teams.Team, ev fixtures.Event) *NextMatch {
	home := isHome(team, ev)
	opponent := ev.HomeTeam
	if home {
		opponent = ev.AwayTeam
	}
	return &NextMatch{
		Team:        team.Name,
		Opponent:    opponent,
		Home:        home,
		Competition: orPlaceholder(firstNonEmpty(ev.League, ev.Tournament)),
		Date:        eventDate(ev),
	}
}

func eventDate(ev fixtures.Event) string {
	if ev.Date != "" {
		return ev.Date
	}
	if ts := ev.Timestamp; ts != "" {
		if len(ts) > 10 {
			return ts[:10]
		}
		return ts
	}
	return "TBD"
}

func isHome(team teams.Team, ev fixtures.Event) bool {
	return strings.EqualFold(ev.HomeTeam, team.Name)
}

func scoreLabel(v *int) string {
	if v == nil {
		return "?"
	}
	return fmt.Sprintf("%d", *v)
}
