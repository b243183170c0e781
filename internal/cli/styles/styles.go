// Package styles renders the human-readable CLI output.
package styles

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/hito/internal/config"
	"github.com/thenoetrevino/hito/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 80

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Status:", "Assignee:"
	ValueStyle    lipgloss.Style
	SectionStyle  lipgloss.Style // For section headers like "Description", "Tasks"

	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style

	taskStatusColors    map[models.TaskStatus]string
	projectStatusColors map[models.ProjectStatus]string
)

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Accent)).
		Bold(true).
		MarginTop(1)

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Create))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.ErrorFg)).
		Background(lipgloss.Color(colors.ErrorBg)).
		Padding(0, 1)

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

// ColoredText renders text with a hex color
func ColoredText(text, hexColor string) string {
	if hexColor == "" {
		return text
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

// TaskStatus renders the status label in its color
func TaskStatus(s models.TaskStatus) string {
	return ColoredText(s.Label(), taskStatusColors[s])
}

// ProjectStatus renders the status label in its color
func ProjectStatus(s models.ProjectStatus) string {
	return ColoredText(s.Label(), projectStatusColors[s])
}

// Field renders "Label: value"
func Field(label, value string) string {
	return LabelStyle.Render(label+":") + " " + ValueStyle.Render(value)
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}
