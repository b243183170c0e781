package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/hito/internal/models"
	"github.com/thenoetrevino/hito/internal/tui/theme"
)

func badge(label, color string) string {
	if color == "" {
		color = theme.Subtle
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Background)).
		Background(lipgloss.Color(color)).
		Padding(0, 1).
		Render(label)
}

// TaskStatusBadge renders the task status label on its status color.
func TaskStatusBadge(s models.TaskStatus) string {
	return badge(s.Label(), taskStatusColors[s])
}

// ProjectStatusBadge renders the project status label on its status color.
func ProjectStatusBadge(s models.ProjectStatus) string {
	return badge(s.Label(), projectStatusColors[s])
}
