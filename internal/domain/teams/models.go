package teams

import "strings"

// Team is one team record as returned by a name search. Image and link fields
// are optional and left empty when upstream omits them.
type Team struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	AlternateNames  string `json:"alternateNames"`
	Stadium         string `json:"stadium"`
	StadiumLocation string `json:"stadiumLocation"`
	Country         string `json:"country"`
	FormedYear      string `json:"formedYear"`
	Manager         string `json:"manager"`
	Coach           string `json:"coach"`
	League          string `json:"league"`
	Links           Links  `json:"links"`
	Images          Images `json:"images"`
}

// Links holds the website and social handles exactly as upstream sends them.
type Links struct {
	Website   string `json:"website"`
	Twitter   string `json:"twitter"`
	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
	YouTube   string `json:"youtube"`
}

// Images holds the optional artwork URLs for a team.
type Images struct {
	Fanart1      string `json:"fanart1"`
	Fanart2      string `json:"fanart2"`
	Fanart3      string `json:"fanart3"`
	Banner       string `json:"banner"`
	StadiumThumb string `json:"stadiumThumb"`
}

// Alternates splits the comma-separated alternate name list, trimming each
// entry and dropping blanks.
func (t Team) Alternates() []string {
	if strings.TrimSpace(t.AlternateNames) == "" {
		return nil
	}
	parts := strings.Split(t.AlternateNames, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// BackgroundCandidates returns artwork URLs in display preference order.
func (i Images) BackgroundCandidates() []string {
	return []string{i.Fanart1, i.Fanart2, i.Fanart3, i.Banner, i.StadiumThumb}
}
