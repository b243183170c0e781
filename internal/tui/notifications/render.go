// Package notifications draws the transient banners stacked in the top
// right corner of the screen.
package notifications

import (
	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"
	"github.com/thenoetrevino/hito/internal/tui/state"
)

// MaxWidth caps the banner body; longer server messages wrap.
const MaxWidth = 48

// Render renders a notification banner based on severity level
func Render(severity Severity, message string) string {
	s := severity.style()

	header := s.icon + " " + s.title
	body := wordwrap.String(message, MaxWidth)
	width := max(lipgloss.Width(header), lipgloss.Width(body))

	headerView := lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.foreground)).
		Bold(true).
		Width(width).
		Render(header)

	bodyView := lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.foreground)).
		Width(width).
		Render(body)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(s.background)).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, headerView, bodyView))
}

// RenderFromState renders a notification banner from a state.Notification
func RenderFromState(n state.Notification) string {
	return Render(severityOf(n.Level), n.Message)
}
