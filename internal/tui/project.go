package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"charm.land/lipgloss/v2"
	"golang.org/x/sync/errgroup"

	"github.com/thenoetrevino/hito/internal/api"
	"github.com/thenoetrevino/hito/internal/models"
	projectservice "github.com/thenoetrevino/hito/internal/services/project"
	taskservice "github.com/thenoetrevino/hito/internal/services/task"
	"github.com/thenoetrevino/hito/internal/tui/components"
	"github.com/thenoetrevino/hito/internal/tui/huhforms"
	"github.com/thenoetrevino/hito/internal/tui/layers"
	"github.com/thenoetrevino/hito/internal/tui/state"
)

const emptyTasksMessage = "No tasks found. Create your first task to get started."

type projectMode int

const (
	modeList projectMode = iota
	modeAddTask
	modeInlineEdit
	modeEditModal
	modeStatusPicker
	modeAssignPicker
	modeConfirmDelete
)

type projectPage struct {
	env       env
	projectID string
	project   *models.Project
	tasks     *state.TaskListState
	users     []*models.User
	err       *state.ErrorState
	loading   bool
	// busy is set while a task call is in flight
	busy bool

	mode   projectMode
	form   *huh.Form
	target *models.Task

	taskValues   huhforms.TaskValues
	statusValue  models.TaskStatus
	assignValues huhforms.AssignValues
}

func newProjectPage(e env, projectID string) *projectPage {
	return &projectPage{
		env:       e,
		projectID: projectID,
		tasks:     state.NewTaskListState(),
		err:       state.NewErrorState(),
	}
}

func (p *projectPage) Init() tea.Cmd {
	return p.load()
}

func (p *projectPage) load() tea.Cmd {
	if p.loading {
		return nil
	}
	p.loading = true

	id := p.projectID
	projects := p.env.app.ProjectService
	tasks := p.env.app.TaskService
	logger := p.env.logger
	return p.env.mount.run(func(ctx context.Context) tea.Msg {
		return loadProject(ctx, projects, tasks, logger, id)
	})
}

// loadProject fetches the project, then its tasks and members side by side.
// Either of the two can fail without failing the page; they come back empty
// instead. An expired session is the exception.
func loadProject(ctx context.Context, projects projectservice.Service, tasks taskservice.Service, logger *slog.Logger, id string) projectLoadedMsg {
	project, err := projects.GetProject(ctx, id)
	if err != nil {
		return projectLoadedMsg{err: err}
	}

	msg := projectLoadedMsg{project: project}
	var tasksErr, usersErr error

	var g errgroup.Group
	g.Go(func() error {
		msg.tasks, tasksErr = tasks.GetTasks(ctx, id)
		return nil
	})
	g.Go(func() error {
		msg.users, usersErr = projects.GetProjectUsers(ctx, id)
		return nil
	})
	_ = g.Wait()

	for _, err := range []error{tasksErr, usersErr} {
		if errors.Is(err, api.ErrUnauthenticated) {
			return projectLoadedMsg{err: err}
		}
	}
	if tasksErr != nil {
		logger.Warn("failed to load tasks", "project", id, "error", tasksErr)
		msg.tasks = []*models.Task{}
	}
	if usersErr != nil {
		logger.Warn("failed to load project users", "project", id, "error", usersErr)
		msg.users = []*models.User{}
	}
	return msg
}

func (p *projectPage) Update(msg tea.Msg) (page, tea.Cmd) {
	switch msg := msg.(type) {
	case projectLoadedMsg:
		p.loading = false
		if msg.err != nil {
			p.env.logger.Error("failed to load project", "project", p.projectID, "error", msg.err)
			p.err.Set(api.Message(msg.err))
			return p, nil
		}
		p.err.Clear()
		p.project = msg.project
		p.users = msg.users
		p.tasks.Set(msg.tasks)
		return p, nil

	case taskCreatedMsg:
		p.busy = false
		if msg.err != nil {
			return p, notify(state.LevelError, api.Message(msg.err))
		}
		p.tasks.Append(p.withAssignee(msg.task))
		return p, notify(state.LevelInfo, "Task created")

	case taskUpdatedMsg:
		p.busy = false
		if msg.err != nil {
			return p, notify(state.LevelError, api.Message(msg.err))
		}
		p.tasks.Replace(p.withAssignee(msg.task))
		return p, notify(state.LevelInfo, "Task "+msg.verb)

	case taskDeletedMsg:
		p.busy = false
		p.closeForm()
		if msg.err != nil {
			return p, notify(state.LevelError, api.Message(msg.err))
		}
		p.tasks.Remove(msg.id)
		return p, notify(state.LevelInfo, "Task deleted")

	case tea.WindowSizeMsg:
		p.env.resize(msg.Width, p.form)
	}

	if p.form != nil {
		return p, p.updateForm(msg)
	}
	if key, ok := msg.(tea.KeyPressMsg); ok {
		return p, p.handleKey(key)
	}
	return p, nil
}

func (p *projectPage) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	keys := p.env.keys

	if p.mode == modeConfirmDelete {
		switch {
		case p.busy:
		case keyIs(msg, "y", "Y"):
			return p.submitDelete()
		case keyIs(msg, "n", "N", keys.Back):
			p.closeForm()
		}
		return nil
	}

	switch {
	case keyIs(msg, keys.Back):
		return navigate(Location{Route: RouteDashboard})
	case keyIs(msg, keys.PrevItem, "up"):
		p.tasks.MoveUp()
		return nil
	case keyIs(msg, keys.NextItem, "down"):
		p.tasks.MoveDown()
		return nil
	case keyIs(msg, keys.ToggleDetails):
		p.tasks.ToggleDetails()
		return nil
	case keyIs(msg, keys.EditProject):
		return navigate(Location{Route: RouteEditProject, ProjectID: p.projectID})
	case keyIs(msg, keys.Refresh):
		return p.load()
	}

	if p.busy || p.project == nil {
		return nil
	}

	if keyIs(msg, keys.AddTask) {
		return p.openAddTask()
	}

	selected, ok := p.tasks.Selected()
	if !ok {
		return nil
	}

	switch {
	case keyIs(msg, keys.CycleStatus):
		return p.openStatusPicker(selected)
	case keyIs(msg, keys.AssignTask):
		return p.openAssignPicker(selected)
	case keyIs(msg, keys.UnassignTask):
		return p.unassign(selected)
	case keyIs(msg, keys.EditTask):
		return p.openInlineEdit(selected)
	case keyIs(msg, keys.EditTaskModal):
		return p.openEditModal(selected)
	case keyIs(msg, keys.DeleteTask):
		p.mode = modeConfirmDelete
		p.target = selected
	}
	return nil
}

func (p *projectPage) View(width, height int) string {
	if p.project == nil {
		switch {
		case p.loading:
			return components.SubtleStyle.Render("Loading project...")
		case p.err.HasError():
			return components.ErrorTextStyle.Render(p.err.Get()) + "\n\n" +
				components.SubtleStyle.Render("esc to go back, r to retry")
		}
		return ""
	}

	var b strings.Builder
	b.WriteString(p.header(width))
	b.WriteString("\n\n")

	if p.err.HasError() {
		b.WriteString(components.ErrorTextStyle.Render(p.err.Get()))
		b.WriteString("\n\n")
	}

	b.WriteString(components.TitleStyle.Render(fmt.Sprintf("Tasks (%d)", p.tasks.Len())))
	b.WriteString("\n")

	if p.tasks.Len() == 0 {
		b.WriteString(components.SubtleStyle.Render(emptyTasksMessage))
		return b.String()
	}

	rows := make([]string, 0, p.tasks.Len())
	for i, task := range p.tasks.Items() {
		selected := i == p.tasks.SelectedIndex()
		if selected && p.mode == modeInlineEdit && p.form != nil {
			rows = append(rows, components.EditBoxStyle.Width(width-2).Render(p.form.View()))
			continue
		}
		rows = append(rows, components.RenderTaskRow(components.TaskRowProps{
			Task:     task,
			Selected: selected,
			Expanded: p.tasks.Expanded(task.ID),
			Width:    width - 2,
		}))
	}
	used := strings.Count(b.String(), "\n") + 1
	b.WriteString(visibleWindow(rows, p.tasks.SelectedIndex(), height-used))
	return b.String()
}

func (p *projectPage) header(width int) string {
	title := components.TitleStyle.Render(p.project.Name) + "  " +
		components.ProjectStatusBadge(p.project.Status)

	created := components.SubtleStyle.Render("Created " + p.project.CreatedAt.Display())

	description := components.RenderDescription(components.DescriptionProps{
		Description: p.project.Description,
		Width:       width - 4,
	})
	// long descriptions must leave room for the task list
	description = lipgloss.NewStyle().MaxHeight(8).Render(description)

	return lipgloss.JoinVertical(lipgloss.Left, title, created, "", description)
}

func (p *projectPage) Overlay(width, _ int) string {
	switch p.mode {
	case modeConfirmDelete:
		if p.target == nil {
			return ""
		}
		if p.busy {
			return confirmBox("Deleting...")
		}
		return confirmBox(fmt.Sprintf("Delete task '%s'?", p.target.Title))
	case modeAddTask:
		return p.formBox(components.CreateBoxStyle, "New Task", layers.ModalWidth(width))
	case modeEditModal:
		return p.formBox(components.EditBoxStyle, "Edit Task", layers.ModalWidth(width))
	case modeStatusPicker, modeAssignPicker:
		return p.formBox(components.EditBoxStyle, p.target.Title, layers.PickerWidth)
	}
	return ""
}

func (p *projectPage) formBox(style lipgloss.Style, title string, width int) string {
	if p.form == nil {
		return ""
	}
	return style.Width(width).Render(components.TitleStyle.Render(title) + "\n\n" + p.form.View())
}

func (p *projectPage) Hints() []components.Hint {
	k := p.env.keys
	switch p.mode {
	case modeConfirmDelete:
		return []components.Hint{{Key: "y", Desc: "delete"}, {Key: "n", Desc: "cancel"}}
	case modeList:
		return []components.Hint{
			{Key: k.AddTask, Desc: "add"},
			{Key: k.CycleStatus, Desc: "status"},
			{Key: k.AssignTask, Desc: "assign"},
			{Key: k.UnassignTask, Desc: "unassign"},
			{Key: k.EditTask, Desc: "edit"},
			{Key: k.EditTaskModal, Desc: "edit all"},
			{Key: k.DeleteTask, Desc: "delete"},
			{Key: k.ToggleDetails, Desc: "details"},
			{Key: k.EditProject, Desc: "edit project"},
			{Key: k.Back, Desc: "back"},
		}
	}
	return []components.Hint{{Key: "enter", Desc: "next"}, {Key: k.SaveForm, Desc: "save"}, {Key: "esc", Desc: "cancel"}}
}

func (p *projectPage) Capturing() bool { return p.form != nil }

func (p *projectPage) Busy() bool { return p.loading || p.busy }
