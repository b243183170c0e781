// Package theme holds the active TUI colors.
package theme

import "github.com/thenoetrevino/hito/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Accent         string
	Background     string
	Title          string
	Subtle         string
	Normal         string
	Create         string
	Edit           string
	Delete         string
	Border         string
	SelectedBorder string
	SelectedBg     string

	StatusTodo       string
	StatusInProgress string
	StatusInReview   string
	StatusDone       string

	InfoFg    string
	InfoBg    string
	WarningFg string
	WarningBg string
	ErrorFg   string
	ErrorBg   string

	StatusBarBg   string
	StatusBarText string
)

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Accent = colors.Accent
	Background = colors.Background
	Title = colors.Title
	Subtle = colors.Subtle
	Normal = colors.Normal
	Create = colors.Create
	Edit = colors.Edit
	Delete = colors.Delete
	Border = colors.Border
	SelectedBorder = colors.SelectedBorder
	SelectedBg = colors.SelectedBg

	StatusTodo = colors.StatusTodo
	StatusInProgress = colors.StatusInProgress
	StatusInReview = colors.StatusInReview
	StatusDone = colors.StatusDone

	InfoFg = colors.InfoFg
	InfoBg = colors.InfoBg
	WarningFg = colors.WarningFg
	WarningBg = colors.WarningBg
	ErrorFg = colors.ErrorFg
	ErrorBg = colors.ErrorBg

	StatusBarBg = colors.StatusBarBg
	StatusBarText = colors.StatusBarText
}
