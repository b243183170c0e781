package tui

import (
	"context"
	"errors"
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

const updateProjectFailedMessage = "Failed to update project"

type editProjectPage struct {
	env        env
	projectID  string
	project    *models.Project
	values     huhforms.ProjectValues
	form       *huh.Form
	loading    bool
	submitting bool
	err        *state.ErrorState
}

func newEditProjectPage(e env, projectID string) *editProjectPage {
	return &editProjectPage{env: e, projectID: projectID, err: state.NewErrorState()}
}

func (p *editProjectPage) Init() tea.Cmd {
	p.loading = true
	id := p.projectID
	projects := p.env.app.ProjectService
	return p.env.mount.run(func(ctx context.Context) tea.Msg {
		project, err := projects.GetProject(ctx, id)
		return projectLoadedMsg{project: project, err: err}
	})
}

func (p *editProjectPage) back() tea.Cmd {
	return navigate(Location{Route: RouteProject, ProjectID: p.projectID})
}

func (p *editProjectPage) Update(msg tea.Msg) (page, tea.Cmd) {
	switch msg := msg.(type) {
	case projectLoadedMsg:
		p.loading = false
		if msg.err != nil {
			p.err.Set(api.Message(msg.err))
			return p, nil
		}
		p.project = msg.project
		p.values = huhforms.ProjectValuesFrom(msg.project)
		p.form = newForm(huhforms.NewProjectForm(&p.values), p.env.width)
		return p, p.form.Init()

	case projectUpdatedMsg:
		p.submitting = false
		if msg.err != nil {
			p.env.logger.Warn("project update failed", "project", p.projectID, "error", msg.err)
			p.err.Set(updateFailure(msg.err))
			p.form = newForm(huhforms.NewProjectForm(&p.values), p.env.width)
			return p, p.form.Init()
		}
		return p, tea.Batch(p.back(), notify(state.LevelInfo, "Project updated"))

	case tea.WindowSizeMsg:
		p.env.resize(msg.Width, p.form)

	case tea.KeyPressMsg:
		if p.form == nil && !p.submitting && keyIs(msg, p.env.keys.Back) {
			return p, p.back()
		}
	}

	if p.form == nil || p.submitting {
		return p, nil
	}

	var cmd tea.Cmd
	p.form, cmd = updateForm(p.form, msg, p.env.keys.SaveForm)
	switch p.form.State {
	case huh.StateCompleted:
		return p, tea.Batch(cmd, p.submit())
	case huh.StateAborted:
		return p, p.back()
	}
	return p, cmd
}

// changes holds only the fields that differ from the loaded project.
func changes(project *models.Project, v huhforms.ProjectValues) projectservice.UpdateProjectRequest {
	var req projectservice.UpdateProjectRequest
	if name := strings.TrimSpace(v.Name); name != project.Name {
		req.Name = &name
	}
	if description := strings.TrimSpace(v.Description); description != project.Description {
		req.Description = &description
	}
	if v.Status != project.Status {
		status := v.Status
		req.Status = &status
	}
	return req
}

func (p *editProjectPage) submit() tea.Cmd {
	if p.submitting || p.project == nil {
		return nil
	}

	req := changes(p.project, p.values)
	if req.IsEmpty() {
		return p.back()
	}

	p.submitting = true
	p.err.Clear()
	id := p.projectID
	projects := p.env.app.ProjectService
	return p.env.mount.run(func(ctx context.Context) tea.Msg {
		project, err := projects.UpdateProject(ctx, id, req)
		return projectUpdatedMsg{project: project, err: err}
	})
}

// updateFailure prefers the server's detail over the generic text.
func updateFailure(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		if detail := apiErr.Detail(); detail != "" {
			return detail
		}
	}
	return updateProjectFailedMessage
}

func (p *editProjectPage) View(width, _ int) string {
	var b strings.Builder
	title := "Edit Project"
	if p.project != nil {
		title += ": " + p.project.Name
	}
	b.WriteString(components.TitleStyle.Render(title))
	b.WriteString("\n\n")

	if p.err.HasError() {
		b.WriteString(components.ErrorTextStyle.Render(p.err.Get()))
		b.WriteString("\n\n")
	}

	switch {
	case p.loading:
		b.WriteString(components.SubtleStyle.Render("Loading project..."))
	case p.submitting:
		b.WriteString(components.SubtleStyle.Render("Saving..."))
	case p.form != nil:
		b.WriteString(components.EditBoxStyle.Width(width - 2).Render(p.form.View()))
	}
	return b.String()
}

func (p *editProjectPage) Overlay(int, int) string { return "" }

func (p *editProjectPage) Hints() []components.Hint {
	return []components.Hint{
		{Key: "enter", Desc: "next / save"},
		{Key: p.env.keys.SaveForm, Desc: "save"},
		{Key: "esc", Desc: "back"},
	}
}

func (p *editProjectPage) Capturing() bool { return p.form != nil }

func (p *editProjectPage) Busy() bool { return p.loading || p.submitting }
