package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   any
		want   string
	}{
		{"no response", 0, nil, "Network error: Could not create project. Please check your connection."},
		{"400 detail", http.StatusBadRequest, map[string]any{"detail": "Name taken"}, "Name taken"},
		{"400 generic", http.StatusBadRequest, map[string]any{}, "Invalid request data."},
		{"401", http.StatusUnauthorized, map[string]any{"detail": "expired"}, "Your session has expired. Please log in again."},
		{"403", http.StatusForbidden, nil, "You don't have permission to create project."},
		{"404", http.StatusNotFound, nil, "The requested resource was not found."},
		{"422 list", http.StatusUnprocessableEntity, map[string]any{"detail": []any{
			map[string]any{"loc": []any{"body", "name"}, "msg": "field required"},
			map[string]any{"msg": "value too long"},
		}}, "field required value too long"},
		{"422 item without msg", http.StatusUnprocessableEntity, map[string]any{"detail": []any{
			map[string]any{"loc": []any{"body"}},
			map[string]any{"msg": "value too long"},
		}}, "value too long"},
		{"422 string", http.StatusUnprocessableEntity, map[string]any{"detail": "bad"}, "bad"},
		{"422 generic", http.StatusUnprocessableEntity, nil, "Validation failed. Please check your input."},
		{"500", http.StatusInternalServerError, map[string]any{"message": "boom"}, "Server error. Please try again later."},
		{"default message", http.StatusConflict, map[string]any{"message": "Already exists"}, "Already exists"},
		{"default generic", http.StatusBadGateway, "<html>bad gateway</html>", "Failed to create project."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Describe("create project", tt.status, tt.body))
		})
	}
}

func TestNormalize_KeepsStatusAndCause(t *testing.T) {
	raw := &Error{Status: http.StatusForbidden, Err: errors.New("GET /projects/: 403 Forbidden")}

	err := Normalize("delete project", raw)

	var apiErr *Error
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "delete project", apiErr.Action)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
	assert.Equal(t, "You don't have permission to delete project.", err.Error())
	assert.Equal(t, http.StatusForbidden, StatusOf(err))
}

// Errors that never reached the server read as connectivity problems but
// keep their cause for errors.Is
func TestNormalize_ForeignError(t *testing.T) {
	sentinel := errors.New("invalid payload")

	err := Normalize("create project", sentinel)

	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 0, StatusOf(err))
	assert.Equal(t, "Network error: Could not create project. Please check your connection.", Message(err))
}

func TestNormalize_Nil(t *testing.T) {
	assert.NoError(t, Normalize("fetch projects", nil))
}

func TestError_IsUnauthenticated(t *testing.T) {
	err := Normalize("fetch tasks", &Error{Status: http.StatusUnauthorized})
	assert.ErrorIs(t, err, ErrUnauthenticated)

	err = Normalize("fetch tasks", &Error{Status: http.StatusForbidden})
	assert.False(t, errors.Is(err, ErrUnauthenticated))
}
