package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
}

// Success prints a JSON envelope around data. Human and quiet output are
// written by the commands themselves.
func (f *OutputFormatter) Success(key string, data any) error {
	return json.NewEncoder(os.Stdout).Encode(map[string]any{
		"success": true,
		key:       data,
	})
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) {
	f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion.
// JSON errors go to stdout so agents can parse them; human errors go to
// stderr.
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		if err := json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": false,
			"error":   errData,
		}); err != nil {
			slog.Error("failed to write error output", "error", err)
		}
		return
	}

	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(os.Stderr, "Suggestion: %s\n", suggestion)
	}
}

// Fail reports err under code and returns it wrapped with the exit code its
// kind maps to.
func (f *OutputFormatter) Fail(code string, err error) error {
	exit := codeFor(err)
	if exit == ExitUnauthenticated {
		f.ErrorWithSuggestion(code, err.Error(), "Run 'hito auth login --username <email>' to sign in again")
	} else {
		f.Error(code, err.Error())
	}
	return Exit(exit, err)
}

// Confirm asks a yes/no question on stdout and reads the answer from in.
// Anything but y or yes is a no.
func Confirm(in io.Reader, prompt string) bool {
	fmt.Printf("%s (y/N): ", prompt)
	var response string
	if _, err := fmt.Fscanln(in, &response); err != nil {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
