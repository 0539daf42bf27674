package thesportsdb

import (
	"bytes"
	"encoding/json"
	"strconv"
)

type teamsResponse struct {
	Teams []teamResponse `json:"teams"`
}

type eventsResponse struct {
	Events []eventResponse `json:"events"`
}

type resultsResponse struct {
	Results []eventResponse `json:"results"`
}

type playersResponse struct {
	Player []playerResponse `json:"player"`
}

type teamResponse struct {
	ID              flexString `json:"idTeam"`
	Team            string     `json:"strTeam"`
	Alternate       string     `json:"strAlternate"`
	Stadium         string     `json:"strStadium"`
	StadiumLocation string     `json:"strStadiumLocation"`
	Country         string     `json:"strCountry"`
	FormedYear      flexString `json:"intFormedYear"`
	Manager         string     `json:"strManager"`
	Coach           string     `json:"strCoach"`
	League          string     `json:"strLeague"`
	Website         string     `json:"strWebsite"`
	Twitter         string     `json:"strTwitter"`
	Instagram       string     `json:"strInstagram"`
	Facebook        string     `json:"strFacebook"`
	Youtube         string     `json:"strYoutube"`
	Fanart1         string     `json:"strTeamFanart1"`
	Fanart2         string     `json:"strTeamFanart2"`
	Fanart3         string     `json:"strTeamFanart3"`
	Banner          string     `json:"strTeamBanner"`
	StadiumThumb    string     `json:"strStadiumThumb"`
}

type eventResponse struct {
	ID         flexString `json:"idEvent"`
	Event      string     `json:"strEvent"`
	HomeTeam   string     `json:"strHomeTeam"`
	AwayTeam   string     `json:"strAwayTeam"`
	Date       string     `json:"dateEvent"`
	Timestamp  string     `json:"strTimestamp"`
	League     string     `json:"strLeague"`
	Tournament string     `json:"strTournament"`
	HomeScore  flexString `json:"intHomeScore"`
	AwayScore  flexString `json:"intAwayScore"`
}

type playerResponse struct {
	ID       flexString `json:"idPlayer"`
	Player   string     `json:"strPlayer"`
	Position string     `json:"strPosition"`
	Cutout   string     `json:"strCutout"`
	Thumb    string     `json:"strThumb"`
}

// flexString accepts a JSON string, number or null. Upstream is inconsistent
// about quoting numeric fields.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		// booleans and objects carry no usable value
		*f = ""
		return nil
	}
	if i, err := n.Int64(); err == nil {
		*f = flexString(strconv.FormatInt(i, 10))
		return nil
	}
	*f = flexString(n.String())
	return nil
}
