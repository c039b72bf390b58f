package report

import "github.com/charmbracelet/lipgloss"

var (
	accent  = lipgloss.Color("#4fc1ff")
	muted   = lipgloss.Color("#6b7280")
	profit  = lipgloss.Color("#22c55e")
	loss    = lipgloss.Color("#ef4444")
	neutral = lipgloss.Color("#e5e7eb")
)

type styles struct {
	heading lipgloss.Style
	label   lipgloss.Style
	tile    lipgloss.Style
	up      lipgloss.Style
	down    lipgloss.Style
	plain   lipgloss.Style
}

func newStyles(color bool) styles {
	base := lipgloss.NewStyle()
	s := styles{
		heading: base.Bold(true),
		label:   base,
		tile:    base.Border(lipgloss.RoundedBorder()).Padding(0, 2).MarginRight(1),
		up:      base.Bold(true),
		down:    base.Bold(true),
		plain:   base.Bold(true),
	}
	if !color {
		return s
	}
	s.heading = s.heading.Foreground(accent)
	s.label = s.label.Foreground(muted)
	s.tile = s.tile.BorderForeground(accent)
	s.up = s.up.Foreground(profit)
	s.down = s.down.Foreground(loss)
	s.plain = s.plain.Foreground(neutral)
	return s
}
