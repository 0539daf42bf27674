package thesportsdb

import "time"

const (
	providerName       = "thesportsdb"
	defaultBaseURL     = "https://www.thesportsdb.com/api/v1/json"
	defaultAPIKey      = "3"
	defaultHTTPTimeout = 10 * time.Second
	maxErrorBodyBytes  = 512
)

const (
	pathSearchTeams = "/searchteams.php"
	pathNextEvents  = "/eventsnext.php"
	pathLastEvents  = "/eventslast.php"
	pathSquad       = "/lookup_all_players.php"
)
