package cli

import (
	"errors"
	"net/http"

	"github.com/thenoetrevino/hito/internal/api"
	projectservice "github.com/thenoetrevino/hito/internal/services/project"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: network errors, server errors, unexpected failures.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data from the server.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Invalid status values, empty names, rejected input (400/422).
	ExitValidation = 5

	// ExitUnauthenticated indicates there is no session or it expired.
	ExitUnauthenticated = 6
)

// ExitErr carries the process exit code for a failed command.
type ExitErr struct {
	Code int
	Err  error
}

func (e *ExitErr) Error() string {
	if e.Err == nil {
		return "exit status"
	}
	return e.Err.Error()
}

func (e *ExitErr) Unwrap() error { return e.Err }

// Exit wraps err with an exit code.
func Exit(code int, err error) error {
	return &ExitErr{Code: code, Err: err}
}

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitErr
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitError
}

// codeFor classifies a service error.
func codeFor(err error) int {
	switch {
	case errors.Is(err, api.ErrUnauthenticated):
		return ExitUnauthenticated
	case errors.Is(err, projectservice.ErrInvalidProjectData):
		return ExitDataErr
	}

	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		// local validation errors never reach the API
		return ExitValidation
	}
	switch apiErr.Status {
	case http.StatusNotFound:
		return ExitNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return ExitValidation
	default:
		return ExitError
	}
}
