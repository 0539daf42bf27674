// Package render draws team cards and stage events for a terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/preston-bernstein/football-team-service/internal/card"
	"github.com/preston-bernstein/football-team-service/internal/sequencer"
)

// Renderer formats cards with a color profile detected from its writer.
type Renderer struct {
	w  io.Writer
	st styles
}

// New returns a Renderer writing to w.
func New(w io.Writer) *Renderer {
	return &Renderer{w: w, st: newStyles(lipgloss.NewRenderer(w))}
}

// Card renders every section of c.
func (r *Renderer) Card(c *card.Card) string {
	if c == nil {
		return ""
	}
	parts := []string{
		r.header(c.Header, c.Background),
		r.next(c.Next),
		r.form(c.Form),
		r.bio(c.Bio),
		r.squad(c.Squad),
	}
	return r.st.box.Render(strings.Join(parts, "\n\n"))
}

// Event renders the fragment for one stage event.
func (r *Renderer) Event(ev sequencer.Event) string {
	switch ev.Type {
	case sequencer.EventLoading:
		return r.st.muted.Render(fmt.Sprintf("%s %s", ev.Message, ev.Query))
	case sequencer.EventHeader:
		if ev.Header == nil {
			return ""
		}
		return r.header(*ev.Header, ev.Background)
	case sequencer.EventNext:
		return r.next(ev.Next)
	case sequencer.EventForm:
		return r.form(ev.Form)
	case sequencer.EventBio:
		if ev.Bio == nil {
			return ""
		}
		return r.bio(*ev.Bio)
	case sequencer.EventSquad:
		return r.squad(ev.Squad)
	case sequencer.EventError:
		return r.st.errors.Render("Error: " + ev.Message)
	}
	return ""
}

// Emit writes the rendered event followed by a newline, so a Renderer can
// serve as a sequencer sink.
func (r *Renderer) Emit(ev sequencer.Event) {
	if out := r.Event(ev); out != "" {
		fmt.Fprintln(r.w, out)
	}
}

func (r *Renderer) header(h card.Header, background string) string {
	lines := []string{r.st.title.Render(h.Name), r.st.text.Render(h.Stadium)}
	if background != "" {
		lines = append(lines, r.st.link.Render(background))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) next(n *card.NextMatch) string {
	title := r.st.section.Render("Next match")
	if n == nil {
		return title + "\n" + r.st.muted.Render(sequencer.MsgNoUpcoming)
	}
	line := fmt.Sprintf("%s vs %s", n.Team, n.Opponent)
	venue := "away"
	if n.Home {
		venue = "home"
	}
	chips := strings.Join([]string{
		r.st.chip.Render(n.Competition),
		r.st.chip.Render(n.Date),
		r.st.chip.Render(venue),
	}, " ")
	return title + "\n" + r.st.text.Render(line) + "\n" + chips
}

func (r *Renderer) form(form []card.FormEntry) string {
	title := r.st.section.Render("Recent form")
	if len(form) == 0 {
		return title + "\n" + r.st.muted.Render(sequencer.MsgNoRecent)
	}
	chips := make([]string, 0, len(form))
	details := make([]string, 0, len(form))
	for _, f := range form {
		chips = append(chips, r.letter(f.Letter))
		details = append(details, r.st.muted.Render(fmt.Sprintf("%s • %s • %s", f.Event, f.Date, f.Score)))
	}
	return title + "\n" + strings.Join(chips, " ") + "\n" + strings.Join(details, "\n")
}

func (r *Renderer) letter(l card.Letter) string {
	switch l {
	case card.Win:
		return r.st.win.Render(string(l))
	case card.Loss:
		return r.st.loss.Render(string(l))
	case card.Draw:
		return r.st.draw.Render(string(l))
	}
	return r.st.chip.Render(string(l))
}

func (r *Renderer) bio(b card.Bio) string {
	rows := []string{
		r.st.section.Render("Club"),
		r.field("Founded", b.Founded),
		r.field("Manager", b.Manager),
		r.field("League", b.League),
		r.field("Location", b.Location),
	}
	for _, link := range []string{b.Links.Website, b.Links.Twitter, b.Links.Instagram, b.Links.Facebook, b.Links.YouTube} {
		if link != "" {
			rows = append(rows, r.st.link.Render(link))
		}
	}
	return strings.Join(rows, "\n")
}

func (r *Renderer) field(label, value string) string {
	return r.st.muted.Render(label+": ") + r.st.text.Render(value)
}

func (r *Renderer) squad(squad []card.SquadEntry) string {
	title := r.st.section.Render("Squad")
	if len(squad) == 0 {
		return title + "\n" + r.st.muted.Render(sequencer.MsgNoPlayers)
	}
	width := 0
	for _, p := range squad {
		if w := lipgloss.Width(p.Name); w > width {
			width = w
		}
	}
	rows := make([]string, 0, len(squad)+1)
	rows = append(rows, title)
	for _, p := range squad {
		name := r.st.text.Width(width + 2).Render(p.Name)
		rows = append(rows, name+r.st.muted.Render(p.Position))
	}
	return strings.Join(rows, "\n")
}
