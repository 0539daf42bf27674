package card

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/preston-bernstein/football-team-service/internal/domain/players"
)

// Rank orders positions for display; lower sorts first.
type Rank int

const (
	RankGoalkeeper Rank = iota
	RankDefender
	RankMidfielder
	RankForward
	RankUnknown
)

var rankTokens = []struct {
	rank   Rank
	tokens []string
}{
	{RankGoalkeeper, []string{"keep"}},
	{RankDefender, []string{"def", "back"}},
	{RankMidfielder, []string{"mid"}},
	{RankForward, []string{"forw", "wing", "strik", "attac"}},
}

// PositionRank buckets a free-text position by case-insensitive substring.
// Buckets are tested in order, so "Defensive Midfield" ranks as a defender.
func PositionRank(position string) Rank {
	pos := strings.ToLower(position)
	for _, rt := range rankTokens {
		for _, tok := range rt.tokens {
			if strings.Contains(pos, tok) {
				return rt.rank
			}
		}
	}
	return RankUnknown
}

// RankSquad returns a copy of roster sorted by (rank, name) and truncated to
// limit when limit > 0. Names compare with locale-aware collation.
func RankSquad(roster []players.Player, limit int) []players.Player {
	sorted := make([]players.Player, len(roster))
	copy(sorted, roster)

	// Collators keep internal buffers; one per call keeps this goroutine-safe.
	coll := collate.New(language.Und)
	sort.SliceStable(sorted, func(i, j int) bool {
		ri, rj := PositionRank(sorted[i].Position), PositionRank(sorted[j].Position)
		if ri != rj {
			return ri < rj
		}
		return coll.CompareString(sorted[i].Name, sorted[j].Name) < 0
	})

	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
