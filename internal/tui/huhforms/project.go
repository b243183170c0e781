package huhforms

import (
	"charm.land/huh/v2"
	"github.com/thenoetrevino/hito/internal/models"
)

// ProjectValues is bound to the create and edit project forms.
type ProjectValues struct {
	Name        string
	Description string
	Status      models.ProjectStatus
}

// ProjectValuesFrom pre-fills the form from an existing project.
func ProjectValuesFrom(p *models.Project) ProjectValues {
	status := p.Status
	if !status.Valid() {
		status = models.DefaultProjectStatus
	}
	return ProjectValues{Name: p.Name, Description: p.Description, Status: status}
}

// NewProjectForm creates a huh form for creating or editing a project
func NewProjectForm(v *ProjectValues) *huh.Form {
	if v.Status == "" {
		v.Status = models.DefaultProjectStatus
	}

	return build(
		huh.NewInput().
			Key("name").
			Title("Project Name").
			Placeholder("Enter project name...").
			Validate(required("name")).
			Value(&v.Name),

		huh.NewText().
			Key("description").
			Title("Description (optional)").
			Placeholder("Markdown supported").
			CharLimit(2000).
			Lines(4).
			Value(&v.Description),

		huh.NewSelect[models.ProjectStatus]().
			Key("status").
			Title("Status").
			Options(projectStatusOptions()...).
			Value(&v.Status),
	)
}

func projectStatusOptions() []huh.Option[models.ProjectStatus] {
	opts := make([]huh.Option[models.ProjectStatus], 0, len(models.ProjectStatuses))
	for _, s := range models.ProjectStatuses {
		opts = append(opts, huh.NewOption(s.Label(), s))
	}
	return opts
}
