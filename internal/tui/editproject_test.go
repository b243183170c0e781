package tui

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/hito/internal/models"
	"github.com/thenoetrevino/hito/internal/tui/huhforms"
)

func editProject(t *testing.T) (*harness, *editProjectPage, *models.Project) {
	t.Helper()
	h := newHarness(t, true, Location{Route: RouteLogin})
	project := h.fake.AddProject("Apollo", "Moon", models.ProjectActive)
	h.run(h.model.navigate(Location{Route: RouteEditProject, ProjectID: project.ID}))
	return h, currentPage[*editProjectPage](h), project
}

func TestEditProject_Prefills(t *testing.T) {
	h, p, _ := editProject(t)

	require.NotNil(t, p.form)
	assert.Equal(t, huhforms.ProjectValues{Name: "Apollo", Description: "Moon", Status: models.ProjectActive}, p.values)
	assert.Contains(t, h.view(), "Edit Project: Apollo")
	assert.True(t, p.Capturing())
}

func TestEditProject_ResizeRefitsForm(t *testing.T) {
	h, p, project := editProject(t)
	wide := widestLine(p.form.View())

	h.resize(60)
	assert.Equal(t, 60, p.env.width)
	assert.Less(t, widestLine(p.form.View()), wide)

	h.fake.Respond(http.MethodPatch, "/projects/"+project.ID, http.StatusBadRequest, map[string]any{"detail": "Name already taken"})
	p.values.Name = "Artemis"
	h.run(p.submit())
	require.NotNil(t, p.form)
	assert.Less(t, widestLine(p.form.View()), wide, "rebuilt form keeps the new width")
}

func TestEditProject_SendsOnlyChanges(t *testing.T) {
	h, p, project := editProject(t)

	p.values.Status = models.ProjectOnHold
	h.run(p.submit())

	reqs := h.fake.RequestsTo(http.MethodPatch, "/projects/"+project.ID)
	require.Len(t, reqs, 1)
	assert.Equal(t, map[string]any{"status": "on_hold"}, reqs[0].JSON())

	assert.Equal(t, Location{Route: RouteProject, ProjectID: project.ID}, h.model.Location())
	assert.Equal(t, []string{"Project updated"}, h.messages())
	assert.Equal(t, models.ProjectOnHold, h.fake.Project(project.ID).Status)
}

func TestEditProject_NoChangesGoesBack(t *testing.T) {
	h, p, project := editProject(t)

	p.values.Name = " Apollo "
	h.run(p.submit())

	assert.Empty(t, h.fake.RequestsTo(http.MethodPatch, "/projects/"+project.ID))
	assert.Equal(t, RouteProject, h.route())
	assert.Empty(t, h.messages())
}

func TestEditProject_FailureShowsDetail(t *testing.T) {
	h, p, project := editProject(t)
	h.fake.Respond(http.MethodPatch, "/projects/"+project.ID, http.StatusBadRequest, map[string]any{"detail": "Name already taken"})

	p.values.Name = "Gemini"
	h.run(p.submit())

	assert.Equal(t, RouteEditProject, h.route())
	assert.Equal(t, "Name already taken", p.err.Get())
	require.NotNil(t, p.form, "form is rebuilt for another try")
	assert.Equal(t, "Gemini", p.values.Name)
}

func TestEditProject_FailureFallsBack(t *testing.T) {
	h, p, project := editProject(t)
	h.fake.Respond(http.MethodPatch, "/projects/"+project.ID, http.StatusInternalServerError, map[string]any{})

	p.values.Name = "Gemini"
	h.run(p.submit())

	assert.Equal(t, updateProjectFailedMessage, p.err.Get())
}

func TestEditProject_EscGoesBack(t *testing.T) {
	h, _, project := editProject(t)

	h.press("esc")
	assert.Equal(t, Location{Route: RouteProject, ProjectID: project.ID}, h.model.Location())
}

func TestEditProject_MissingProject(t *testing.T) {
	h := newHarness(t, true, Location{Route: RouteLogin})
	h.run(h.model.navigate(Location{Route: RouteEditProject, ProjectID: "p404"}))

	p := currentPage[*editProjectPage](h)
	assert.Nil(t, p.form)
	assert.True(t, p.err.HasError())

	h.press("esc")
	assert.Equal(t, RouteProject, h.route())
}

func TestChanges(t *testing.T) {
	project := &models.Project{Name: "Apollo", Description: "Moon", Status: models.ProjectActive}
	name := func(s string) *string { return &s }

	assert.True(t, changes(project, huhforms.ProjectValuesFrom(project)).IsEmpty())

	req := changes(project, huhforms.ProjectValues{Name: "Gemini", Description: "Moon", Status: models.ProjectActive})
	assert.Equal(t, name("Gemini"), req.Name)
	assert.Nil(t, req.Description)
	assert.Nil(t, req.Status)

	req = changes(project, huhforms.ProjectValues{Name: "Apollo", Description: "", Status: models.ProjectArchived})
	assert.Nil(t, req.Name)
	assert.Equal(t, name(""), req.Description)
	require.NotNil(t, req.Status)
	assert.Equal(t, models.ProjectArchived, *req.Status)
}
