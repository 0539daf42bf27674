package card

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/football-team-service/internal/domain/players"
)

func TestPositionRank(t *testing.T) {
	cases := map[string]Rank{
		"Goalkeeper":         RankGoalkeeper,
		"GOALKEEPER":         RankGoalkeeper,
		"Centre-Back":        RankDefender,
		"Defender":           RankDefender,
		"Left-Back":          RankDefender,
		"Defensive Midfield": RankDefender,
		"Central Midfield":   RankMidfielder,
		"Midfielder":         RankMidfielder,
		"Left Winger":        RankForward,
		"Centre-Forward":     RankForward,
		"Striker":            RankForward,
		"Attacking Midfield": RankMidfielder,
		"Attacker":           RankForward,
		"Manager":            RankUnknown,
		"":                   RankUnknown,
	}
	for pos, want := range cases {
		assert.Equal(t, want, PositionRank(pos), pos)
	}
}

func TestRankSquadOrdersByRankThenName(t *testing.T) {
	roster := []players.Player{
		{Name: "Vinicius", Position: "Left Winger"},
		{Name: "Unknown Guy", Position: ""},
		{Name: "Modric", Position: "Central Midfield"},
		{Name: "Courtois", Position: "Goalkeeper"},
		{Name: "alaba", Position: "Centre-Back"},
		{Name: "Carvajal", Position: "Right-Back"},
		{Name: "Bellingham", Position: "Attacking Midfield"},
		{Name: "Lunin", Position: "Goalkeeper"},
	}

	got := RankSquad(roster, 0)

	names := make([]string, 0, len(got))
	for _, p := range got {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{
		"Courtois", "Lunin",
		"alaba", "Carvajal",
		"Bellingham", "Modric",
		"Vinicius",
		"Unknown Guy",
	}, names)
	assert.Equal(t, "Vinicius", roster[0].Name, "input must not be reordered")
}

func TestRankSquadCollatesAccents(t *testing.T) {
	roster := []players.Player{
		{Name: "Zidane", Position: "Midfielder"},
		{Name: "Éder", Position: "Midfielder"},
		{Name: "Ancelotti", Position: "Midfielder"},
	}

	got := RankSquad(roster, 0)

	require.Len(t, got, 3)
	assert.Equal(t, "Ancelotti", got[0].Name)
	assert.Equal(t, "Éder", got[1].Name)
	assert.Equal(t, "Zidane", got[2].Name)
}

func TestBuilderSquadTruncatesToTwelve(t *testing.T) {
	roster := make([]players.Player, 0, 20)
	positions := []string{"Forward", "Midfielder", "Defender", "Goalkeeper", "Coach"}
	for i := 0; i < 20; i++ {
		roster = append(roster, players.Player{
			Name:     fmt.Sprintf("Player %02d", i),
			Position: positions[i%len(positions)],
		})
	}

	squad := NewBuilder(Options{PlaceholderURL: "placeholder"}).Squad(roster)

	require.Len(t, squad, SquadLimit)
	for i := 1; i < len(squad); i++ {
		assert.LessOrEqual(t, squad[i-1].Rank, squad[i].Rank)
	}
	assert.Equal(t, RankGoalkeeper, squad[0].Rank)
	assert.Equal(t, "placeholder", squad[0].Photo)
}

func TestBuilderSquadPlaceholders(t *testing.T) {
	squad := NewBuilder(Options{}).Squad([]players.Player{{}})

	require.Len(t, squad, 1)
	assert.Equal(t, Placeholder, squad[0].Name)
	assert.Equal(t, Placeholder, squad[0].Position)
}
