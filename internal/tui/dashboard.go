package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/hito/internal/api"
	"github.com/thenoetrevino/hito/internal/models"
	projectservice "github.com/thenoetrevino/hito/internal/services/project"
	"github.com/thenoetrevino/hito/internal/tui/components"
	"github.com/thenoetrevino/hito/internal/tui/huhforms"
	"github.com/thenoetrevino/hito/internal/tui/state"
)

const emptyProjectsMessage = "No projects found. Create your first project to get started."

type dashboardPage struct {
	env      env
	projects *state.ListState[*models.Project]
	err      *state.ErrorState
	loading  bool

	// createForm is the inline creation form, nil while hidden
	createForm   *huh.Form
	createValues huhforms.ProjectValues
	creating     bool

	// confirmDelete is the project awaiting y/n
	confirmDelete *models.Project
	deleting      bool

	loggingOut bool
}

func newDashboardPage(e env) *dashboardPage {
	return &dashboardPage{
		env:      e,
		projects: state.NewProjectListState(),
		err:      state.NewErrorState(),
	}
}

func (p *dashboardPage) Init() tea.Cmd {
	return p.fetch()
}

func (p *dashboardPage) fetch() tea.Cmd {
	if p.loading {
		return nil
	}
	p.loading = true
	projects := p.env.app.ProjectService
	return p.env.mount.run(func(ctx context.Context) tea.Msg {
		list, err := projects.GetProjects(ctx)
		return projectsLoadedMsg{projects: list, err: err}
	})
}

func (p *dashboardPage) Update(msg tea.Msg) (page, tea.Cmd) {
	switch msg := msg.(type) {
	case projectsLoadedMsg:
		p.loading = false
		if msg.err != nil {
			p.env.logger.Error("failed to load projects", "error", msg.err)
			p.err.Set(api.Message(msg.err))
			return p, nil
		}
		p.err.Clear()
		p.projects.Set(msg.projects)
		return p, nil

	case projectCreatedMsg:
		return p, p.handleCreated(msg)

	case projectDeletedMsg:
		p.deleting = false
		p.confirmDelete = nil
		if msg.err != nil {
			return p, notify(state.LevelError, api.Message(msg.err))
		}
		p.projects.Remove(msg.id)
		return p, notify(state.LevelInfo, "Project deleted")

	case loggedOutMsg:
		p.loggingOut = false
		if msg.err != nil {
			p.env.logger.Error("logout failed", "error", msg.err)
		}
		return p, tea.Batch(
			navigate(Location{Route: RouteLogin}),
			notify(state.LevelInfo, "Logged out"),
		)

	case tea.WindowSizeMsg:
		p.env.resize(msg.Width, p.createForm)

	case tea.KeyPressMsg:
		return p, p.handleKey(msg)
	}

	if p.createForm != nil && !p.creating {
		return p, p.updateCreateForm(msg)
	}
	return p, nil
}

func (p *dashboardPage) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	keys := p.env.keys

	if p.createForm != nil {
		if p.creating {
			return nil
		}
		return p.updateCreateForm(msg)
	}

	if p.confirmDelete != nil {
		switch {
		case p.deleting:
			return nil
		case keyIs(msg, "y", "Y"):
			return p.submitDelete()
		case keyIs(msg, "n", "N", keys.Back):
			p.confirmDelete = nil
		}
		return nil
	}

	switch {
	case keyIs(msg, keys.PrevItem, "up"):
		p.projects.MoveUp()
	case keyIs(msg, keys.NextItem, "down"):
		p.projects.MoveDown()
	case keyIs(msg, keys.Open):
		if selected, ok := p.projects.Selected(); ok {
			return navigate(Location{Route: RouteProject, ProjectID: selected.ID})
		}
	case keyIs(msg, keys.EditProject):
		if selected, ok := p.projects.Selected(); ok {
			return navigate(Location{Route: RouteEditProject, ProjectID: selected.ID})
		}
	case keyIs(msg, keys.CreateProject):
		return p.toggleCreateForm()
	case keyIs(msg, keys.DeleteProject):
		if selected, ok := p.projects.Selected(); ok {
			p.confirmDelete = selected
		}
	case keyIs(msg, keys.Refresh):
		return p.fetch()
	case keyIs(msg, keys.Logout):
		return p.logout()
	}
	return nil
}

func (p *dashboardPage) toggleCreateForm() tea.Cmd {
	if p.createForm != nil {
		p.createForm = nil
		return nil
	}
	p.createValues = huhforms.ProjectValues{}
	p.createForm = newForm(huhforms.NewProjectForm(&p.createValues), p.env.width)
	return p.createForm.Init()
}

func (p *dashboardPage) updateCreateForm(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.createForm, cmd = updateForm(p.createForm, msg, p.env.keys.SaveForm)
	switch p.createForm.State {
	case huh.StateCompleted:
		return tea.Batch(cmd, p.submitCreate())
	case huh.StateAborted:
		p.createForm = nil
		return nil
	}
	return cmd
}

func (p *dashboardPage) submitCreate() tea.Cmd {
	if p.creating {
		return nil
	}
	p.creating = true

	req := projectservice.CreateProjectRequest{
		Name:        strings.TrimSpace(p.createValues.Name),
		Description: strings.TrimSpace(p.createValues.Description),
		Status:      p.createValues.Status,
	}
	projects := p.env.app.ProjectService
	return p.env.mount.run(func(ctx context.Context) tea.Msg {
		project, err := projects.CreateProject(ctx, req)
		return projectCreatedMsg{project: project, err: err}
	})
}

// handleCreated puts the new project first. A response without an id means
// the local list can not be trusted, so the form closes and the list is
// fetched again.
func (p *dashboardPage) handleCreated(msg projectCreatedMsg) tea.Cmd {
	p.creating = false

	if errors.Is(msg.err, projectservice.ErrInvalidProjectData) {
		p.env.logger.Warn("created project came back without an id, refetching")
		p.createForm = nil
		return p.fetch()
	}
	if msg.err != nil {
		// reopen with what was typed so it can be fixed
		p.createForm = newForm(huhforms.NewProjectForm(&p.createValues), p.env.width)
		return tea.Batch(p.createForm.Init(), notify(state.LevelError, api.Message(msg.err)))
	}

	p.createForm = nil
	p.projects.Prepend(msg.project)
	return notify(state.LevelInfo, fmt.Sprintf("Project '%s' created", msg.project.Name))
}

// submitDelete runs after the user confirmed. The entry stays in the list
// until the server agrees.
func (p *dashboardPage) submitDelete() tea.Cmd {
	if p.deleting || p.confirmDelete == nil {
		return nil
	}
	p.deleting = true

	id := p.confirmDelete.ID
	projects := p.env.app.ProjectService
	return p.env.mount.run(func(ctx context.Context) tea.Msg {
		return projectDeletedMsg{id: id, err: projects.DeleteProject(ctx, id)}
	})
}

func (p *dashboardPage) logout() tea.Cmd {
	if p.loggingOut {
		return nil
	}
	p.loggingOut = true
	authService := p.env.app.AuthService
	return p.env.mount.run(func(ctx context.Context) tea.Msg {
		return loggedOutMsg{err: authService.Logout(ctx)}
	})
}

func (p *dashboardPage) View(width, height int) string {
	var b strings.Builder
	b.WriteString(components.TitleStyle.Render("Projects"))
	b.WriteString(components.SubtleStyle.Render(fmt.Sprintf("  %d", p.projects.Len())))
	b.WriteString("\n\n")

	if p.err.HasError() {
		b.WriteString(components.ErrorTextStyle.Render(p.err.Get()))
		b.WriteString("\n\n")
	}

	if p.createForm != nil {
		content := components.TitleStyle.Render("New Project") + "\n\n"
		if p.creating {
			content += components.SubtleStyle.Render("Creating...")
		} else {
			content += p.createForm.View()
		}
		b.WriteString(components.CreateBoxStyle.Width(width - 2).Render(content))
		b.WriteString("\n")
	}

	switch {
	case p.loading && p.projects.Len() == 0:
		b.WriteString(components.SubtleStyle.Render("Loading projects..."))
	case p.projects.Len() == 0:
		b.WriteString(components.SubtleStyle.Render(emptyProjectsMessage))
	default:
		cards := make([]string, 0, p.projects.Len())
		for i, project := range p.projects.Items() {
			cards = append(cards, components.RenderProjectCard(components.ProjectCardProps{
				Project:  project,
				Selected: i == p.projects.SelectedIndex(),
				Width:    width - 2,
			}))
		}
		used := strings.Count(b.String(), "\n") + 1
		b.WriteString(visibleWindow(cards, p.projects.SelectedIndex(), height-used))
	}

	return b.String()
}

func (p *dashboardPage) Overlay(int, int) string {
	if p.confirmDelete == nil {
		return ""
	}
	question := fmt.Sprintf("Delete project '%s'?\nAll of its tasks are deleted too.", p.confirmDelete.Name)
	if p.deleting {
		question = "Deleting..."
	}
	return confirmBox(question)
}

func (p *dashboardPage) Hints() []components.Hint {
	k := p.env.keys
	if p.createForm != nil {
		return []components.Hint{{Key: "enter", Desc: "next"}, {Key: k.SaveForm, Desc: "create"}, {Key: "esc", Desc: "cancel"}}
	}
	return []components.Hint{
		{Key: k.Open, Desc: "open"},
		{Key: k.CreateProject, Desc: "new"},
		{Key: k.EditProject, Desc: "edit"},
		{Key: k.DeleteProject, Desc: "delete"},
		{Key: k.Refresh, Desc: "refresh"},
		{Key: k.Logout, Desc: "log out"},
	}
}

func (p *dashboardPage) Capturing() bool { return p.createForm != nil }

func (p *dashboardPage) Busy() bool {
	return p.loading || p.creating || p.deleting || p.loggingOut
}
