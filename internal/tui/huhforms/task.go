package huhforms

import (
	"charm.land/huh/v2"
	"github.com/thenoetrevino/hito/internal/models"
)

// TaskValues is bound to every task form. AssigneeID is empty for an
// unassigned task.
type TaskValues struct {
	Title       string
	Description string
	Status      models.TaskStatus
	AssigneeID  string
}

// TaskValuesFrom pre-fills the edit forms from an existing task.
func TaskValuesFrom(t *models.Task) TaskValues {
	v := TaskValues{Title: t.Title, Description: t.Description, Status: t.Status}
	switch {
	case t.Assignee != nil:
		v.AssigneeID = t.Assignee.ID
	case t.AssigneeID != nil:
		v.AssigneeID = *t.AssigneeID
	}
	if !v.Status.Valid() {
		v.Status = models.DefaultTaskStatus
	}
	return v
}

func titleField(v *TaskValues) huh.Field {
	return huh.NewInput().
		Key("title").
		Title("Title").
		Placeholder("Enter task title...").
		Validate(required("title")).
		Value(&v.Title)
}

func descriptionField(v *TaskValues, lines int) huh.Field {
	return huh.NewText().
		Key("description").
		Title("Description").
		Placeholder("Markdown supported").
		CharLimit(5000).
		Lines(lines).
		Value(&v.Description)
}

func statusField(v *TaskValues) huh.Field {
	return huh.NewSelect[models.TaskStatus]().
		Key("status").
		Title("Status").
		Options(taskStatusOptions()...).
		Value(&v.Status)
}

// NewTaskForm creates the add task form: title, description and status.
func NewTaskForm(v *TaskValues) *huh.Form {
	if v.Status == "" {
		v.Status = models.DefaultTaskStatus
	}
	return build(titleField(v), descriptionField(v, 3), statusField(v))
}

// NewInlineTaskForm edits only the title and description in place of the
// task row.
func NewInlineTaskForm(v *TaskValues) *huh.Form {
	return build(titleField(v), descriptionField(v, 2))
}

// NewTaskModalForm edits every task field, assignee included.
func NewTaskModalForm(v *TaskValues, users []*models.User) *huh.Form {
	return build(
		titleField(v),
		descriptionField(v, 5),
		statusField(v),
		huh.NewSelect[string]().
			Key("assignee").
			Title("Assignee").
			Options(assigneeOptions(users, true)...).
			Value(&v.AssigneeID),
	)
}

func taskStatusOptions() []huh.Option[models.TaskStatus] {
	opts := make([]huh.Option[models.TaskStatus], 0, len(models.TaskStatuses))
	for _, s := range models.TaskStatuses {
		opts = append(opts, huh.NewOption(s.Label(), s))
	}
	return opts
}

func assigneeOptions(users []*models.User, unassigned bool) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(users)+1)
	if unassigned {
		opts = append(opts, huh.NewOption("Unassigned", ""))
	}
	for _, u := range users {
		opts = append(opts, huh.NewOption(u.DisplayName(), u.ID))
	}
	return opts
}
