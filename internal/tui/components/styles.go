// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/hito/internal/config"
	"github.com/thenoetrevino/hito/internal/models"
	"github.com/thenoetrevino/hito/internal/tui/theme"
)

// These are cached to avoid recomputing on every redraw.
var (
	// TitleStyle defines page titles and project names
	TitleStyle lipgloss.Style

	// SubtleStyle is used for secondary text such as dates and counts
	SubtleStyle lipgloss.Style

	// CardStyle frames a project card or task row
	CardStyle lipgloss.Style

	// SelectedCardStyle frames the row under the cursor
	SelectedCardStyle lipgloss.Style

	// CreateBoxStyle frames creation forms (green border)
	CreateBoxStyle lipgloss.Style

	// EditBoxStyle frames edit forms and pickers (blue border)
	EditBoxStyle lipgloss.Style

	// DeleteConfirmBoxStyle frames deletion confirmations (red border)
	DeleteConfirmBoxStyle lipgloss.Style

	// HelpBoxStyle frames the help overlay
	HelpBoxStyle lipgloss.Style

	// ErrorTextStyle renders inline page errors
	ErrorTextStyle lipgloss.Style

	// StatusBarStyle defines the base style for the status bar
	StatusBarStyle lipgloss.Style

	// KeyStyle highlights a key in hints and help
	KeyStyle lipgloss.Style

	taskStatusColors    map[models.TaskStatus]string
	projectStatusColors map[models.ProjectStatus]string
)

// InitStyles initializes all styles with the given color scheme
func InitStyles(colors config.ColorScheme) {
	theme.Init(colors)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Border)).
		Padding(0, 1)

	SelectedCardStyle = CardStyle.
		BorderForeground(lipgloss.Color(colors.SelectedBorder))

	CreateBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Create)).
		Padding(1, 2)

	EditBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Edit)).
		Padding(1, 2)

	DeleteConfirmBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Delete)).
		Padding(1, 2)

	HelpBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(1, 2)

	ErrorTextStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Delete)).
		Bold(true)

	StatusBarStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(colors.StatusBarBg)).
		Foreground(lipgloss.Color(colors.StatusBarText))

	KeyStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Accent)).
		Bold(true)

	taskStatusColors = map[models.TaskStatus]string{
		models.TaskTodo:       colors.StatusTodo,
		models.TaskInProgress: colors.StatusInProgress,
		models.TaskInReview:   colors.StatusInReview,
		models.TaskDone:       colors.StatusDone,
	}
	projectStatusColors = map[models.ProjectStatus]string{
		models.ProjectActive:    colors.StatusDone,
		models.ProjectOnHold:    colors.StatusInReview,
		models.ProjectCompleted: colors.StatusInProgress,
		models.ProjectArchived:  colors.Subtle,
	}
}
