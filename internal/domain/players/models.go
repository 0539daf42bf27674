package players

// Player is one squad member as returned by the squad lookup.
type Player struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Cutout   string `json:"cutout"`
	Thumb    string `json:"thumb"`
}

// Photo returns the preferred photo URL, cutout first.
func (p Player) Photo() string {
	if p.Cutout != "" {
		return p.Cutout
	}
	return p.Thumb
}
