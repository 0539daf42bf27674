package card

import (
	"strings"

	"github.com/preston-bernstein/football-team-service/internal/domain/teams"
)

// SafeLink normalizes a website or social link to a secure absolute URL.
// Scheme-less and handle-style values ("@club", "twitter.com/club") get
// https:// prefixed. Empty input yields "".
func SafeLink(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(raw, "http") {
		return ToHTTPS(raw)
	}
	return "https://" + strings.TrimPrefix(raw, "@")
}

// HeaderFor returns the header section.
func HeaderFor(team teams.Team) Header {
	stadium := Placeholder
	if team.Stadium != "" {
		stadium = "Stadium: " + team.Stadium
	}
	return Header{Name: orPlaceholder(team.Name), Stadium: stadium}
}

// BioFor returns the biography section.
func BioFor(team teams.Team) Bio {
	return Bio{
		Founded:  orPlaceholder(team.FormedYear),
		Manager:  orPlaceholder(firstNonEmpty(team.Manager, team.Coach)),
		League:   orPlaceholder(team.League),
		Location: orPlaceholder(firstNonEmpty(team.StadiumLocation, team.Country)),
		Links: Links{
			Website:   SafeLink(team.Links.Website),
			Twitter:   SafeLink(team.Links.Twitter),
			Instagram: SafeLink(team.Links.Instagram),
			Facebook:  SafeLink(team.Links.Facebook),
			YouTube:   SafeLink(team.Links.YouTube),
		},
	}
}
