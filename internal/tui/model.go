// Package tui is the interactive client: a root model that routes between
// pages and owns the cross-page concerns.
package tui

import (
	"context"
	"errors"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/hito/internal/api"
	"github.com/thenoetrevino/hito/internal/app"
	"github.com/thenoetrevino/hito/internal/config"
	"github.com/thenoetrevino/hito/internal/logging"
	"github.com/thenoetrevino/hito/internal/tui/state"
)

const sessionExpiredMessage = "Your session has expired. Please log in again."

// Model represents the application state for the TUI
type Model struct {
	app    *app.App
	keys   config.KeyMappings
	logger *slog.Logger
	ctx    context.Context

	location Location
	page     page
	mount    *mount
	mounts   int

	notifications *state.NotificationState
	notifyTTL     time.Duration
	showHelp      bool

	width  int
	height int
}

// Option configures a Model.
type Option func(*Model)

// WithNotificationTTL changes how long notifications stay up. Zero or less
// keeps them on screen.
func WithNotificationTTL(d time.Duration) Option {
	return func(m *Model) { m.notifyTTL = d }
}

// WithStart changes the first location, which defaults to the dashboard.
func WithStart(loc Location) Option {
	return func(m *Model) { m.location = loc }
}

// New creates the root model. ctx bounds every request the pages make.
func New(ctx context.Context, a *app.App, cfg *config.Config, opts ...Option) *Model {
	m := &Model{
		app:           a,
		keys:          cfg.KeyMappings,
		logger:        logging.Component("tui"),
		ctx:           ctx,
		location:      Location{Route: RouteDashboard},
		notifications: state.NewNotificationState(),
		notifyTTL:     state.NotificationTTL,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Init mounts the start page.
func (m *Model) Init() tea.Cmd {
	return m.navigate(m.location)
}

// Location returns where the model currently is.
func (m *Model) Location() Location {
	return m.location
}

// Notifications returns the notifications on screen.
func (m *Model) Notifications() []state.Notification {
	return m.notifications.All()
}

// Update handles all messages and updates the model accordingly
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.notifications.SetWindowSize(msg.Width, msg.Height)
		return m, m.forward(msg)

	case tea.KeyPressMsg:
		return m, m.handleKey(msg)

	case navigateMsg:
		return m, m.navigate(msg.to)

	case notifyMsg:
		return m, m.notify(msg.level, msg.text)

	case dismissMsg:
		m.notifications.Dismiss(msg.id)
		return m, nil

	case pageMsg:
		return m, m.handlePageMsg(msg)
	}

	return m, m.forward(msg)
}

func (m *Model) forward(msg tea.Msg) tea.Cmd {
	if m.page == nil {
		return nil
	}
	next, cmd := m.page.Update(msg)
	m.page = next
	return cmd
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}

	if m.showHelp {
		if keyIs(msg, m.keys.ShowHelp, m.keys.Quit, m.keys.Back, "enter") {
			m.showHelp = false
		}
		return nil
	}

	if m.page != nil && !m.page.Capturing() {
		switch {
		case keyIs(msg, m.keys.Quit):
			return tea.Quit
		case keyIs(msg, m.keys.ShowHelp):
			m.showHelp = true
			return nil
		}
	}

	return m.forward(msg)
}

// handlePageMsg delivers a result to the page that asked for it. Results
// for an earlier mount are dropped. A 401 on a protected page ends the
// session here and nowhere else.
func (m *Model) handlePageMsg(msg pageMsg) tea.Cmd {
	if m.mount == nil || msg.mount != m.mount.id {
		m.logger.Debug("dropping result for unmounted page", "mount", msg.mount)
		return nil
	}

	if f, ok := msg.msg.(failed); ok && m.location.Route.Protected() {
		if err := f.failure(); errors.Is(err, api.ErrUnauthenticated) {
			m.logger.Info("session expired", "route", m.location.Route.String())
			if m.app.Session.IsAuthenticated() {
				if err := m.app.Session.Clear(m.ctx); err != nil {
					m.logger.Error("failed to clear session", "error", err)
				}
			}
			return tea.Batch(
				m.navigate(Location{Route: RouteLogin}),
				m.notify(state.LevelError, sessionExpiredMessage),
			)
		}
	}

	return m.forward(msg.msg)
}

// navigate unmounts the current page and mounts the one for to, after the
// route guard had its say.
func (m *Model) navigate(to Location) tea.Cmd {
	to = guard(to, m.app.Session.IsAuthenticated())

	if m.mount != nil {
		m.mount.unmount()
	}
	m.mounts++
	m.mount = newMount(m.ctx, m.mounts)
	m.location = to
	m.showHelp = false

	e := env{
		app:    m.app,
		keys:   m.keys,
		mount:  m.mount,
		width:  m.width,
		logger: m.logger.With("route", to.Route.String()),
	}
	m.page = newPage(to, e)
	m.logger.Debug("navigate", "route", to.Route.String(), "project", to.ProjectID)
	return m.page.Init()
}

func newPage(loc Location, e env) page {
	switch loc.Route {
	case RouteRegister:
		return newRegisterPage(e)
	case RouteDashboard:
		return newDashboardPage(e)
	case RouteProject:
		return newProjectPage(e, loc.ProjectID)
	case RouteEditProject:
		return newEditProjectPage(e, loc.ProjectID)
	default:
		return newLoginPage(e)
	}
}

func (m *Model) notify(level state.NotificationLevel, text string) tea.Cmd {
	id := m.notifications.Add(level, text)
	if m.notifyTTL <= 0 {
		return nil
	}
	return tea.Tick(m.notifyTTL, func(time.Time) tea.Msg {
		return dismissMsg{id: id}
	})
}
