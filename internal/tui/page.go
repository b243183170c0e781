package tui

import (
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/hito/internal/app"
	"github.com/thenoetrevino/hito/internal/config"
	"github.com/thenoetrevino/hito/internal/tui/components"
	"github.com/thenoetrevino/hito/internal/tui/layers"
)

// page is one screen. The root model owns the page for the lifetime of its
// mount and forwards every message it does not handle itself.
type page interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (page, tea.Cmd)
	// View renders the page body in the space above the status bar.
	View(width, height int) string
	// Overlay is a modal drawn centered over the body, or "".
	Overlay(width, height int) string
	Hints() []components.Hint
	// Capturing reports whether keys are text input, which disables the
	// single letter global keys.
	Capturing() bool
	Busy() bool
}

// env is what a page gets from the root when it is mounted.
type env struct {
	app    *app.App
	keys   config.KeyMappings
	mount  *mount
	width  int
	logger *slog.Logger
}

func keyIs(msg tea.KeyPressMsg, keys ...string) bool {
	s := msg.String()
	for _, k := range keys {
		if k != "" && s == k {
			return true
		}
	}
	return false
}

// formWidth is the width of the form inside a modal box.
func formWidth(screenWidth int) int {
	return max(layers.ModalWidth(screenWidth)-6, 20)
}

// updateForm forwards msg to form. The save key completes the form from any
// field.
func updateForm(form *huh.Form, msg tea.Msg, saveKey string) (*huh.Form, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok && keyIs(key, saveKey) {
		form.State = huh.StateCompleted
		return form, nil
	}
	model, cmd := form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		form = f
	}
	return form, cmd
}

// resize records the new screen width and refits form, which may be nil.
func (e *env) resize(width int, form *huh.Form) {
	e.width = width
	if form != nil && width > 0 {
		form.WithWidth(formWidth(width))
	}
}

func newForm(form *huh.Form, width int) *huh.Form {
	if width > 0 {
		form = form.WithWidth(formWidth(width))
	}
	return form
}

// visibleWindow joins the blocks that fit in height, keeping the selected
// block on screen. Two lines are kept free for the scroll markers.
func visibleWindow(blocks []string, selected, height int) string {
	if len(blocks) == 0 {
		return ""
	}
	height -= 2
	selected = min(max(selected, 0), len(blocks)-1)

	start, end := selected, selected+1
	used := lipgloss.Height(blocks[selected])
	for start > 0 && used+lipgloss.Height(blocks[start-1]) <= height {
		start--
		used += lipgloss.Height(blocks[start])
	}
	for end < len(blocks) && used+lipgloss.Height(blocks[end]) <= height {
		used += lipgloss.Height(blocks[end])
		end++
	}

	out := strings.Join(blocks[start:end], "\n")
	if start > 0 {
		out = components.SubtleStyle.Render("▲ more above") + "\n" + out
	}
	if end < len(blocks) {
		out += "\n" + components.SubtleStyle.Render("▼ more below")
	}
	return out
}

func confirmBox(question string) string {
	return components.DeleteConfirmBoxStyle.Render(
		question + "\n\n" +
			components.KeyStyle.Render("y") + " confirm  " +
			components.KeyStyle.Render("n") + " cancel",
	)
}
