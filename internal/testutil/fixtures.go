package testutil

import (
	"fmt"

	"github.com/preston-bernstein/football-team-service/internal/domain/fixtures"
	"github.com/preston-bernstein/football-team-service/internal/domain/players"
	"github.com/preston-bernstein/football-team-service/internal/domain/teams"
)

// SampleTeam returns a minimal team fixture with the provided id and name.
func SampleTeam(id, name string) teams.Team {
	return teams.Team{
		ID:         id,
		Name:       name,
		Stadium:    name + " Stadium",
		Country:    "England",
		FormedYear: "1900",
		League:     "Test League",
	}
}

// SampleResult returns a finished fixture between home and away.
func SampleResult(home, away string, homeGoals, awayGoals int) fixtures.Event {
	return fixtures.Event{
		ID:        fmt.Sprintf("%s-%s", home, away),
		Name:      home + " vs " + away,
		HomeTeam:  home,
		AwayTeam:  away,
		Date:      "2024-01-01",
		League:    "Test League",
		HomeScore: &homeGoals,
		AwayScore: &awayGoals,
	}
}

// SampleSquad returns n players cycling through every position bucket.
func SampleSquad(n int) []players.Player {
	positions := []string{"Goalkeeper", "Centre-Back", "Central Midfield", "Striker", "Coach"}
	out := make([]players.Player, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, players.Player{
			ID:       fmt.Sprintf("p%d", i),
			Name:     fmt.Sprintf("Player %02d", i),
			Position: positions[i%len(positions)],
		})
	}
	return out
}
