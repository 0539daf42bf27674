package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/football-team-service/internal/domain/teams"
)

func TestResolveEmptyCandidates(t *testing.T) {
	_, ok := Resolve(nil, "Arsenal")
	assert.False(t, ok)

	_, rule := ResolveWithRule([]teams.Team{}, "Arsenal")
	assert.Equal(t, RuleNone, rule)
}

func TestResolveExactBeatsEarlierPartial(t *testing.T) {
	candidates := []teams.Team{
		{ID: "1", Name: "Arsenal FC"},
		{ID: "2", Name: "Arsenal"},
	}

	got, rule := ResolveWithRule(candidates, "Arsenal")

	assert.Equal(t, "2", got.ID)
	assert.Equal(t, RuleExact, rule)
}

func TestResolveExactIsCaseInsensitiveAndTrimmed(t *testing.T) {
	candidates := []teams.Team{{ID: "1", Name: "Chelsea Women"}, {ID: "2", Name: "CHELSEA"}}

	got, ok := Resolve(candidates, "  chelsea ")

	require.True(t, ok)
	assert.Equal(t, "2", got.ID)
}

func TestResolveAlternateBeatsPartial(t *testing.T) {
	candidates := []teams.Team{
		{ID: "1", Name: "Real Madrid", AlternateNames: "Real"},
		{ID: "2", Name: "Real Sociedad"},
	}

	got, rule := ResolveWithRule(candidates, "real")

	assert.Equal(t, "1", got.ID)
	assert.Equal(t, RuleAlternate, rule)
}

func TestResolveAlternateEntriesAreTrimmed(t *testing.T) {
	candidates := []teams.Team{
		{ID: "1", Name: "Manchester United Women"},
		{ID: "2", Name: "Manchester United", AlternateNames: "Man Utd ,  Man United"},
	}

	got, rule := ResolveWithRule(candidates, "MAN UNITED")

	assert.Equal(t, "2", got.ID)
	assert.Equal(t, RuleAlternate, rule)
}

func TestResolvePartialUsesInputOrder(t *testing.T) {
	candidates := []teams.Team{
		{ID: "1", Name: "Athletic Bilbao"},
		{ID: "2", Name: "Atletico Madrid"},
		{ID: "3", Name: "Real Madrid"},
	}

	got, rule := ResolveWithRule(candidates, "madrid")

	assert.Equal(t, "2", got.ID)
	assert.Equal(t, RulePartial, rule)
}

func TestResolvePartialIgnoresNameCaseAndPadding(t *testing.T) {
	candidates := []teams.Team{
		{ID: "1", Name: "Alpha"},
		{ID: "2", Name: "  REAL MADRID Castilla "},
	}

	got, rule := ResolveWithRule(candidates, " Madrid castilla")

	assert.Equal(t, "2", got.ID)
	assert.Equal(t, RulePartial, rule)
}

func TestResolveFallsBackToFirst(t *testing.T) {
	candidates := []teams.Team{{ID: "1", Name: "Alpha"}, {ID: "2", Name: "Beta"}}

	got, rule := ResolveWithRule(candidates, "zzz")

	assert.Equal(t, "1", got.ID)
	assert.Equal(t, RuleFallback, rule)
}

func TestResolveAlwaysReturnsAMember(t *testing.T) {
	candidates := []teams.Team{
		{ID: "1", Name: "Inter", AlternateNames: "Internazionale"},
		{ID: "2", Name: "Inter Miami"},
		{ID: "3", Name: "Milan"},
	}
	for _, q := range []string{"inter", "internazionale", "miami", "mil", "nothing", ""} {
		got, ok := Resolve(candidates, q)
		require.True(t, ok, q)
		assert.Contains(t, candidates, got, q)
	}
}
