package cmd

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Color palette shared by the demo output
var (
	colorPrimary = lipgloss.Color("#8B5CF6") // Violet
	colorAccent  = lipgloss.Color("#06B6D4") // Cyan
	colorMuted   = lipgloss.Color("#6B7280") // Gray
	colorSuccess = lipgloss.Color("#10B981") // Emerald
	colorError   = lipgloss.Color("#EF4444") // Red
)

// demoStyles renders section headers and values for one output stream.
// Styles are bound to a renderer for that stream, so colors are dropped
// automatically when the output is not a terminal.
type demoStyles struct {
	title   lipgloss.Style
	section lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	ok      lipgloss.Style
	fail    lipgloss.Style
}

func newDemoStyles(out io.Writer) demoStyles {
	r := lipgloss.NewRenderer(out)
	return demoStyles{
		title: r.NewStyle().
			Foreground(colorPrimary).
			Bold(true),
		section: r.NewStyle().
			Foreground(colorAccent).
			Bold(true),
		label: r.NewStyle().
			Foreground(colorMuted),
		value: r.NewStyle().
			Bold(true),
		ok: r.NewStyle().
			Foreground(colorSuccess),
		fail: r.NewStyle().
			Foreground(colorError),
	}
}
