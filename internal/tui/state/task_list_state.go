package state

import "github.com/thenoetrevino/hito/internal/models"

// TaskListState is the project page's task cache. Besides the cursor it
// remembers which rows show their full details.
type TaskListState struct {
	*ListState[*models.Task]
	expanded map[string]bool
}

// NewTaskListState creates an empty task list.
func NewTaskListState() *TaskListState {
	return &TaskListState{
		ListState: NewListState(func(t *models.Task) string { return t.ID }),
		expanded:  map[string]bool{},
	}
}

// ToggleDetails flips the detail view of the selected task.
func (s *TaskListState) ToggleDetails() {
	if t, ok := s.Selected(); ok {
		s.expanded[t.ID] = !s.expanded[t.ID]
	}
}

// Expanded reports whether id shows its details.
func (s *TaskListState) Expanded(id string) bool {
	return s.expanded[id]
}

// Remove drops a task and forgets its detail toggle.
func (s *TaskListState) Remove(id string) bool {
	delete(s.expanded, id)
	return s.ListState.Remove(id)
}

// NewProjectListState creates the dashboard's project cache.
func NewProjectListState() *ListState[*models.Project] {
	return NewListState(func(p *models.Project) string { return p.ID })
}
