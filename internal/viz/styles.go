package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	aliveGlyph  = "██"
	deadGlyph   = "· "
	cursorGlyph = "▓▓"
)

type styles struct {
	header  lipgloss.Style
	running lipgloss.Style
	paused  lipgloss.Style
	alive   lipgloss.Style
	dead    lipgloss.Style
	cursor  lipgloss.Style
	panel   lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	graph   lipgloss.Style
	help    lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		header:  lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		running: lipgloss.NewStyle().Foreground(t.Running).Bold(true),
		paused:  lipgloss.NewStyle().Foreground(t.Paused).Bold(true),
		alive:   lipgloss.NewStyle().Foreground(t.Alive),
		dead:    lipgloss.NewStyle().Foreground(t.Dead),
		cursor:  lipgloss.NewStyle().Foreground(t.Accent),
		panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(t.Muted).
			Padding(0, 2).
			MarginLeft(2).
			Width(44),
		label: lipgloss.NewStyle().Foreground(t.Muted).Width(12),
		value: lipgloss.NewStyle().Foreground(t.Text),
		graph: lipgloss.NewStyle().Foreground(t.Secondary).Padding(1, 0),
		help:  lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
	}
}

// Sparkline renders values as a single row of block characters scaled
// between their minimum and maximum. Only the last width values are drawn.
func Sparkline(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return strings.Repeat("─", max(width, 0))
	}
	if len(values) > width {
		values = values[len(values)-width:]
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	var b strings.Builder
	for _, v := range values {
		idx := int((v - lo) / span * float64(len(chars)-1))
		b.WriteRune(chars[min(max(idx, 0), len(chars)-1)])
	}
	return b.String()
}
