package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrUnauthenticated matches any error produced by a 401 response. By the
// time callers see it the session has already been cleared.
var ErrUnauthenticated = errors.New("unauthenticated")

// Error is the single error shape every API call surfaces. Message is the
// text meant for humans; Err keeps the underlying cause.
type Error struct {
	// Action is the verb phrase describing the attempted operation, e.g.
	// "create project".
	Action string
	// Status is the HTTP status, or 0 when no response was received.
	Status int
	// Body is the decoded JSON response body, or the raw text when it was
	// not JSON.
	Body    any
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrUnauthenticated) match any 401.
func (e *Error) Is(target error) bool {
	return target == ErrUnauthenticated && e.Status == http.StatusUnauthorized
}

// HasResponse reports whether the server answered at all.
func (e *Error) HasResponse() bool { return e.Status != 0 }

// Detail returns the body's "detail" field when it is a string.
func (e *Error) Detail() string {
	return stringField(e.Body, "detail")
}

// ServerMessage returns the body's "message" field when it is a string.
func (e *Error) ServerMessage() string {
	return stringField(e.Body, "message")
}

// Describe maps a failed call to the message shown to users. A status of 0
// means no response was received.
func Describe(action string, status int, body any) string {
	if status == 0 {
		return fmt.Sprintf("Network error: Could not %s. Please check your connection.", action)
	}

	switch status {
	case http.StatusBadRequest:
		if detail := stringField(body, "detail"); detail != "" {
			return detail
		}
		return "Invalid request data."
	case http.StatusUnauthorized:
		return "Your session has expired. Please log in again."
	case http.StatusForbidden:
		return fmt.Sprintf("You don't have permission to %s.", action)
	case http.StatusNotFound:
		return "The requested resource was not found."
	case http.StatusUnprocessableEntity:
		return validationMessage(body)
	case http.StatusInternalServerError:
		return "Server error. Please try again later."
	default:
		if msg := stringField(body, "message"); msg != "" {
			return msg
		}
		return fmt.Sprintf("Failed to %s.", action)
	}
}

// Normalize converts any error from a call into an *Error carrying action
// and a human message. Errors that never reached the server are reported
// with the connectivity message. nil stays nil.
func Normalize(action string, err error) error {
	if err == nil {
		return nil
	}

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return &Error{
			Action:  action,
			Message: Describe(action, 0, nil),
			Err:     err,
		}
	}

	normalized := *apiErr
	normalized.Action = action
	normalized.Message = Describe(action, apiErr.Status, apiErr.Body)
	if normalized.Err == nil {
		normalized.Err = apiErr
	}
	return &normalized
}

// Message extracts the human text from err, falling back to err.Error().
func Message(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}
	return err.Error()
}

// StatusOf returns the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

func validationMessage(body any) string {
	switch detail := field(body, "detail").(type) {
	case []any:
		msgs := make([]string, 0, len(detail))
		// items without a msg are skipped rather than rendered as blanks
		for _, item := range detail {
			if msg := stringField(item, "msg"); msg != "" {
				msgs = append(msgs, msg)
			}
		}
		if len(msgs) > 0 {
			return strings.Join(msgs, " ")
		}
	case string:
		if detail != "" {
			return detail
		}
	}
	return "Validation failed. Please check your input."
}

func field(body any, name string) any {
	obj, ok := body.(map[string]any)
	if !ok {
		return nil
	}
	return obj[name]
}

func stringField(body any, name string) string {
	s, _ := field(body, name).(string)
	return s
}

// decodeBody keeps JSON bodies structured and anything else as text.
func decodeBody(data []byte) any {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return nil
	}
	var body any
	if err := json.Unmarshal(data, &body); err != nil {
		return trimmed
	}
	return body
}

// ResponseError builds an *Error from a raw response status and body
// obtained outside Do.
func ResponseError(status int, body []byte, cause error) *Error {
	return &Error{Status: status, Body: decodeBody(body), Err: cause}
}
