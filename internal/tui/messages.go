package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/hito/internal/models"
	"github.com/thenoetrevino/hito/internal/tui/state"
)

type navigateMsg struct {
	to Location
}

type notifyMsg struct {
	level state.NotificationLevel
	text  string
}

type dismissMsg struct {
	id int
}

func navigate(to Location) tea.Cmd {
	return func() tea.Msg { return navigateMsg{to: to} }
}

func notify(level state.NotificationLevel, text string) tea.Cmd {
	return func() tea.Msg { return notifyMsg{level: level, text: text} }
}

// failed is implemented by every result message so the root can spot an
// expired session without knowing the page.
type failed interface {
	failure() error
}

type loginResultMsg struct{ err error }

type registerResultMsg struct {
	user *models.User
	err  error
}

type loggedOutMsg struct{ err error }

type projectsLoadedMsg struct {
	projects []*models.Project
	err      error
}

type projectCreatedMsg struct {
	project *models.Project
	err     error
}

type projectDeletedMsg struct {
	id  string
	err error
}

type projectLoadedMsg struct {
	project *models.Project
	tasks   []*models.Task
	users   []*models.User
	err     error
}

type projectUpdatedMsg struct {
	project *models.Project
	err     error
}

type taskCreatedMsg struct {
	task *models.Task
	err  error
}

// taskUpdatedMsg answers every mutation of an existing task. verb names the
// change for the notification, e.g. "assigned".
type taskUpdatedMsg struct {
	task *models.Task
	verb string
	err  error
}

type taskDeletedMsg struct {
	id  string
	err error
}

func (m loginResultMsg) failure() error    { return m.err }
func (m registerResultMsg) failure() error { return m.err }
func (m loggedOutMsg) failure() error      { return m.err }
func (m projectsLoadedMsg) failure() error { return m.err }
func (m projectCreatedMsg) failure() error { return m.err }
func (m projectDeletedMsg) failure() error { return m.err }
func (m projectLoadedMsg) failure() error  { return m.err }
func (m projectUpdatedMsg) failure() error { return m.err }
func (m taskCreatedMsg) failure() error    { return m.err }
func (m taskUpdatedMsg) failure() error    { return m.err }
func (m taskDeletedMsg) failure() error    { return m.err }
