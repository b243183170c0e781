package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Hint is one key and what it does, shown in the status bar and help.
type Hint struct {
	Key  string
	Desc string
}

type StatusBarProps struct {
	Width int
	Hints []Hint
	// Busy is shown on the right while a request is in flight.
	Busy bool
}

// RenderStatusBar renders the key hints on the left and either the busy
// marker or "? help" on the right.
func RenderStatusBar(props StatusBarProps) string {
	parts := make([]string, 0, len(props.Hints))
	for _, h := range props.Hints {
		parts = append(parts, KeyStyle.Render(h.Key)+" "+h.Desc)
	}
	left := " " + strings.Join(parts, "  ")

	right := "? help "
	if props.Busy {
		right = "working... "
	}

	gap := max(props.Width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	bar := left + strings.Repeat(" ", gap) + right

	return StatusBarStyle.Width(props.Width).MaxHeight(1).Render(bar)
}
