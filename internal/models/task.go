package models

// Assignee is the embedded user summary the server returns on a task.
type Assignee struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Task is a unit of work inside a project.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	ProjectID   string     `json:"project_id"`
	AssigneeID  *string    `json:"assignee_id,omitempty"`
	Assignee    *Assignee  `json:"assignee,omitempty"`
	DueDate     *Timestamp `json:"due_date,omitempty"`
	CreatedAt   Timestamp  `json:"created_at"`
}

// IsAssigned reports whether the task has an assignee.
func (t *Task) IsAssigned() bool {
	return t.Assignee != nil || (t.AssigneeID != nil && *t.AssigneeID != "")
}

// AssigneeName returns the best human readable name of the assignee, or an
// empty string when the task is unassigned.
func (t *Task) AssigneeName() string {
	if t.Assignee == nil {
		return ""
	}
	if t.Assignee.Username != "" {
		return t.Assignee.Username
	}
	return t.Assignee.Email
}
