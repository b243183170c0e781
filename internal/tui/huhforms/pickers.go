package huhforms

import (
	"charm.land/huh/v2"
	"github.com/thenoetrevino/hito/internal/models"
)

// NewStatusPicker is a single select over the task statuses. Choosing an
// option completes the form.
func NewStatusPicker(v *models.TaskStatus) *huh.Form {
	return build(
		huh.NewSelect[models.TaskStatus]().
			Key("status").
			Title("Change status").
			Options(taskStatusOptions()...).
			Value(v),
	)
}

// AssignValues is bound to the assignee picker.
type AssignValues struct {
	UserID  string
	Confirm bool
}

// NewAssigneePicker selects a project member and asks for confirmation
// before the assignment is sent.
func NewAssigneePicker(v *AssignValues, users []*models.User) *huh.Form {
	if v.UserID == "" && len(users) > 0 {
		v.UserID = users[0].ID
	}
	return build(
		huh.NewSelect[string]().
			Key("user").
			Title("Assign to").
			Options(assigneeOptions(users, false)...).
			Value(&v.UserID),

		huh.NewConfirm().
			Key("confirm").
			Title("Assign this user?").
			Affirmative("Assign").
			Negative("Cancel").
			Value(&v.Confirm),
	)
}
