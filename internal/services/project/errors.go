package project

import "errors"

// Domain errors for project service
var (
	// Validation errors
	ErrEmptyName        = errors.New("project name cannot be empty")
	ErrInvalidProjectID = errors.New("invalid project ID")
	ErrInvalidUserID    = errors.New("invalid user ID")
	ErrNothingToUpdate  = errors.New("no project fields to update")

	// Response errors
	ErrInvalidProjectData = errors.New("Invalid project data received from server")
)
