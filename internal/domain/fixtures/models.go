package fixtures

// Event is one match record. Scores are nil for matches that have not been
// played or when upstream sent a value that is not a number.
type Event struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	HomeTeam   string `json:"homeTeam"`
	AwayTeam   string `json:"awayTeam"`
	Date       string `json:"date"`
	Timestamp  string `json:"timestamp"`
	League     string `json:"league"`
	Tournament string `json:"tournament"`
	HomeScore  *int   `json:"homeScore,omitempty"`
	AwayScore  *int   `json:"awayScore,omitempty"`
}

// Played reports whether both scores are known.
func (e Event) Played() bool {
	return e.HomeScore != nil && e.AwayScore != nil
}
