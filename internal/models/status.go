package models

import (
	"fmt"
	"strings"
)

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectOnHold    ProjectStatus = "on_hold"
	ProjectCompleted ProjectStatus = "completed"
	ProjectArchived  ProjectStatus = "archived"
)

// ProjectStatuses lists the project statuses in display order.
var ProjectStatuses = []ProjectStatus{ProjectActive, ProjectOnHold, ProjectCompleted, ProjectArchived}

// DefaultProjectStatus is sent when a project is created without a status.
const DefaultProjectStatus = ProjectActive

var projectStatusLabels = map[ProjectStatus]string{
	ProjectActive:    "Active",
	ProjectOnHold:    "On Hold",
	ProjectCompleted: "Completed",
	ProjectArchived:  "Archived",
}

// Label returns the human readable name. Unknown statuses render as-is.
func (s ProjectStatus) Label() string {
	if l, ok := projectStatusLabels[s]; ok {
		return l
	}
	return string(s)
}

// Valid reports whether s is one of the known project statuses.
func (s ProjectStatus) Valid() bool {
	_, ok := projectStatusLabels[s]
	return ok
}

// ParseProjectStatus accepts either the wire value or the label, in any case.
func ParseProjectStatus(raw string) (ProjectStatus, error) {
	for _, s := range ProjectStatuses {
		if matchesStatus(raw, string(s), s.Label()) {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q (must be: active, on_hold, completed, archived)", ErrInvalidStatus, raw)
}

// TaskStatus is the workflow state of a task.
type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in_progress"
	TaskInReview   TaskStatus = "in_review"
	TaskDone       TaskStatus = "done"
)

// TaskStatuses lists the task statuses in workflow order.
var TaskStatuses = []TaskStatus{TaskTodo, TaskInProgress, TaskInReview, TaskDone}

// DefaultTaskStatus is sent when a task is created without a status.
const DefaultTaskStatus = TaskTodo

var taskStatusLabels = map[TaskStatus]string{
	TaskTodo:       "To Do",
	TaskInProgress: "In Progress",
	TaskInReview:   "In Review",
	TaskDone:       "Done",
}

// Label returns the human readable name. Unknown statuses render as-is.
func (s TaskStatus) Label() string {
	if l, ok := taskStatusLabels[s]; ok {
		return l
	}
	return string(s)
}

// Valid reports whether s is one of the known task statuses.
func (s TaskStatus) Valid() bool {
	_, ok := taskStatusLabels[s]
	return ok
}

// Next cycles to the following status, wrapping from done back to todo.
// Unknown statuses move to todo.
func (s TaskStatus) Next() TaskStatus {
	for i, st := range TaskStatuses {
		if st == s {
			return TaskStatuses[(i+1)%len(TaskStatuses)]
		}
	}
	return TaskTodo
}

// ParseTaskStatus accepts either the wire value or the label, in any case.
func ParseTaskStatus(raw string) (TaskStatus, error) {
	for _, s := range TaskStatuses {
		if matchesStatus(raw, string(s), s.Label()) {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q (must be: todo, in_progress, in_review, done)", ErrInvalidStatus, raw)
}

func matchesStatus(raw, value, label string) bool {
	raw = strings.TrimSpace(raw)
	if strings.EqualFold(raw, value) || strings.EqualFold(raw, label) {
		return true
	}
	// allow "in-progress" and "on hold"
	normalized := strings.NewReplacer("-", "_", " ", "_").Replace(strings.ToLower(raw))
	return normalized == value
}
