package task

import "errors"

// Task-related errors
var (
	// Validation errors
	ErrEmptyTitle       = errors.New("task title cannot be empty")
	ErrInvalidTaskID    = errors.New("invalid task ID")
	ErrInvalidProjectID = errors.New("invalid project ID")
	ErrInvalidUserID    = errors.New("invalid user ID")
	ErrNothingToUpdate  = errors.New("no task fields to update")
	ErrAssigneeConflict = errors.New("cannot both set and clear the assignee")
)
