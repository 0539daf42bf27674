// Package resolver picks the single team a free-text query most plausibly
// refers to from a list of search candidates.
package resolver

import (
	"strings"

	"github.com/preston-bernstein/football-team-service/internal/domain/teams"
)

// Rule names the tie-break rule that selected a candidate.
type Rule string

const (
	RuleNone      Rule = ""
	RuleExact     Rule = "exact"
	RuleAlternate Rule = "alternate"
	RulePartial   Rule = "partial"
	RuleFallback  Rule = "fallback"
)

// Resolve returns the best match for query, or false when candidates is empty.
func Resolve(candidates []teams.Team, query string) (teams.Team, bool) {
	team, rule := ResolveWithRule(candidates, query)
	return team, rule != RuleNone
}

// ResolveWithRule is Resolve that also reports which rule matched. Rules are
// tried in order; within a rule the first candidate in input order wins.
func ResolveWithRule(candidates []teams.Team, query string) (teams.Team, Rule) {
	if len(candidates) == 0 {
		return teams.Team{}, RuleNone
	}
	q := normalize(query)

	for _, t := range candidates {
		if normalize(t.Name) == q {
			return t, RuleExact
		}
	}
	for _, t := range candidates {
		if matchesAlternate(t, q) {
			return t, RuleAlternate
		}
	}
	for _, t := range candidates {
		if strings.Contains(normalize(t.Name), q) {
			return t, RulePartial
		}
	}
	// Preserved even when nothing matched: the first search hit is shown.
	return candidates[0], RuleFallback
}

func matchesAlternate(t teams.Team, q string) bool {
	for _, alt := range t.Alternates() {
		if strings.ToLower(alt) == q {
			return true
		}
	}
	return false
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
