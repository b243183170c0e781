package core

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/hito/internal/app"
	"github.com/thenoetrevino/hito/internal/config"
	"github.com/thenoetrevino/hito/internal/tui"
	"github.com/thenoetrevino/hito/internal/tui/components"
	"github.com/thenoetrevino/hito/internal/tui/huhforms"
)

// App wraps the TUI Model and implements the tea.Model interface.
// This is the single entry point for the Bubble Tea application.
type App struct {
	model *tui.Model
}

// New initializes styles from cfg and creates the root model.
func New(ctx context.Context, a *app.App, cfg *config.Config, opts ...tui.Option) *App {
	components.InitStyles(cfg.ColorScheme)
	huhforms.SetTheme(huhforms.HitoTheme(cfg.ColorScheme))
	return &App{model: tui.New(ctx, a, cfg, opts...)}
}

// Init initializes the Bubble Tea application.
func (a *App) Init() tea.Cmd {
	return a.model.Init()
}

// Update delegates to the root model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := a.model.Update(msg)
	return a, cmd
}

// View delegates to the root model.
func (a *App) View() tea.View {
	return a.model.View()
}

// GetModel returns the underlying Model.
// This is primarily useful for testing purposes.
func (a *App) GetModel() *tui.Model {
	return a.model
}
