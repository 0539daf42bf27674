// Package card turns raw lookup results into the display-ready sections of a
// team card. Everything here is pure: no I/O, no shared state.
package card

import (
	"github.com/preston-bernstein/football-team-service/internal/domain/fixtures"
	"github.com/preston-bernstein/football-team-service/internal/domain/players"
	"github.com/preston-bernstein/football-team-service/internal/domain/teams"
)

// Placeholder is shown for any field upstream left blank.
const Placeholder = "—"

// SquadLimit caps how many ranked squad members are displayed.
const SquadLimit = 12

// FormLimit caps how many past fixtures feed the form sequence.
const FormLimit = 5

// Card is the full presentation payload for one resolved team.
type Card struct {
	TeamID     string       `json:"teamId"`
	Header     Header       `json:"header"`
	Background string       `json:"background,omitempty"`
	Next       *NextMatch   `json:"next,omitempty"`
	Form       []FormEntry  `json:"form"`
	Bio        Bio          `json:"bio"`
	Squad      []SquadEntry `json:"squad"`
}

// Header is the team name and stadium line.
type Header struct {
	Name    string `json:"name"`
	Stadium string `json:"stadium"`
}

// NextMatch summarises the upcoming fixture from the team's point of view.
type NextMatch struct {
	Team        string `json:"team"`
	Opponent    string `json:"opponent"`
	Home        bool   `json:"home"`
	Competition string `json:"competition"`
	Date        string `json:"date"`
}

// FormEntry is one past result.
type FormEntry struct {
	Letter Letter `json:"letter"`
	Event  string `json:"event"`
	Date   string `json:"date"`
	Score  string `json:"score"`
}

// Bio is the biography field set.
type Bio struct {
	Founded  string `json:"founded"`
	Manager  string `json:"manager"`
	League   string `json:"league"`
	Location string `json:"location"`
	Links    Links  `json:"links"`
}

// Links are sanitized, fully-qualified https URLs; blank when absent.
type Links struct {
	Website   string `json:"website,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	YouTube   string `json:"youtube,omitempty"`
}

// SquadEntry is one displayed player.
type SquadEntry struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	Photo    string `json:"photo"`
	Rank     Rank   `json:"rank"`
}

// Options controls image rewriting.
type Options struct {
	ProxyURL       string
	PlaceholderURL string
}

// Builder builds card sections with a fixed image configuration.
type Builder struct {
	images Images
}

// NewBuilder returns a Builder for the given options.
func NewBuilder(opts Options) Builder {
	return Builder{images: Images{ProxyURL: opts.ProxyURL, PlaceholderURL: opts.PlaceholderURL}}
}

// Header returns the header section.
func (b Builder) Header(team teams.Team) Header {
	return HeaderFor(team)
}

// Background returns the proxied background image URL, or "" when the team has no artwork.
func (b Builder) Background(team teams.Team) string {
	return b.images.Background(team.Images)
}

// NextMatch returns the upcoming fixture summary, or nil when there is none.
func (b Builder) NextMatch(team teams.Team, events []fixtures.Event) *NextMatch {
	if len(events) == 0 {
		return nil
	}
	return NextMatchFor(team, events[0])
}

// Form returns the form sequence for the most recent fixtures.
func (b Builder) Form(team teams.Team, events []fixtures.Event) []FormEntry {
	return FormFor(team, events)
}

// Bio returns the biography section.
func (b Builder) Bio(team teams.Team) Bio {
	return BioFor(team)
}

// Squad ranks the roster and returns the displayed subset.
func (b Builder) Squad(roster []players.Player) []SquadEntry {
	ranked := RankSquad(roster, SquadLimit)
	out := make([]SquadEntry, 0, len(ranked))
	for _, p := range ranked {
		out = append(out, SquadEntry{
			Name:     orPlaceholder(p.Name),
			Position: orPlaceholder(p.Position),
			Photo:    b.images.PlayerPhoto(p),
			Rank:     PositionRank(p.Position),
		})
	}
	return out
}

func orPlaceholder(v string) string {
	if v == "" {
		return Placeholder
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
