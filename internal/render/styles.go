package render

import "github.com/charmbracelet/lipgloss"

// Dracula palette.
var (
	foreground = lipgloss.Color("#f8f8f2")
	comment    = lipgloss.Color("#6272a4")
	cyan       = lipgloss.Color("#8be9fd")
	green      = lipgloss.Color("#50fa7b")
	orange     = lipgloss.Color("#ffb86c")
	purple     = lipgloss.Color("#bd93f9")
	red        = lipgloss.Color("#ff5555")
	yellow     = lipgloss.Color("#f1fa8c")
)

type styles struct {
	title   lipgloss.Style
	section lipgloss.Style
	text    lipgloss.Style
	muted   lipgloss.Style
	link    lipgloss.Style
	chip    lipgloss.Style
	errors  lipgloss.Style
	win     lipgloss.Style
	loss    lipgloss.Style
	draw    lipgloss.Style
	box     lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	chip := r.NewStyle().Bold(true).Padding(0, 1)
	return styles{
		title:   r.NewStyle().Foreground(purple).Bold(true),
		section: r.NewStyle().Foreground(orange).Bold(true),
		text:    r.NewStyle().Foreground(foreground),
		muted:   r.NewStyle().Foreground(comment),
		link:    r.NewStyle().Foreground(cyan),
		chip:    chip.Foreground(comment),
		errors:  r.NewStyle().Foreground(red),
		win:     chip.Foreground(green),
		loss:    chip.Foreground(red),
		draw:    chip.Foreground(yellow),
		box: r.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(comment).
			Padding(0, 1),
	}
}
