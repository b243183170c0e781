package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/hito/internal/tui/components"
	"github.com/thenoetrevino/hito/internal/tui/layers"
	"github.com/thenoetrevino/hito/internal/tui/notifications"
	"github.com/thenoetrevino/hito/internal/tui/theme"
)

// View renders the page, its modal, the help overlay and the notifications
// as layers over each other.
func (m *Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.BackgroundColor = lipgloss.Color(theme.Background)

	if m.width == 0 || m.page == nil {
		view.Content = "Loading..."
		return view
	}

	view.Content = m.render()
	return view
}

func (m *Model) render() string {
	bodyHeight := max(m.height-1, 1)
	body := lipgloss.NewStyle().
		Width(m.width).
		Height(bodyHeight).
		MaxHeight(bodyHeight).
		Render(m.page.View(m.width, bodyHeight))

	bar := components.RenderStatusBar(components.StatusBarProps{
		Width: m.width,
		Hints: m.page.Hints(),
		Busy:  m.page.Busy(),
	})

	stack := []*lipgloss.Layer{
		lipgloss.NewLayer(lipgloss.JoinVertical(lipgloss.Left, body, bar)),
	}

	overlay := m.page.Overlay(m.width, m.height)
	if m.showHelp {
		overlay = m.helpView()
	}
	if layer := layers.CreateCenteredLayer(overlay, m.width, m.height); layer != nil {
		stack = append(stack, layer)
	}

	stack = append(stack, m.notifications.GetLayers(notifications.RenderFromState)...)

	return lipgloss.NewCanvas(stack...).Render()
}

func (m *Model) helpView() string {
	hints := append([]components.Hint{}, m.page.Hints()...)
	hints = append(hints,
		components.Hint{Key: m.keys.ShowHelp, Desc: "toggle help"},
		components.Hint{Key: m.keys.Quit, Desc: "quit"},
		components.Hint{Key: "ctrl+c", Desc: "quit from anywhere"},
	)

	keyWidth := 0
	for _, h := range hints {
		keyWidth = max(keyWidth, lipgloss.Width(h.Key))
	}

	var b strings.Builder
	b.WriteString(components.TitleStyle.Render("Keys: " + m.location.Route.String()))
	b.WriteString("\n")
	for _, h := range hints {
		b.WriteString("\n")
		b.WriteString(components.KeyStyle.Width(keyWidth + 2).Render(h.Key))
		b.WriteString(h.Desc)
	}
	return components.HelpBoxStyle.Render(b.String())
}
