package models

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Status Tests
// ============================================================================

func TestTaskStatus_Labels(t *testing.T) {
	tests := []struct {
		status TaskStatus
		want   string
	}{
		{TaskTodo, "To Do"},
		{TaskInProgress, "In Progress"},
		{TaskInReview, "In Review"},
		{TaskDone, "Done"},
		{TaskStatus("blocked"), "blocked"},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.Label())
		})
	}
}

func TestTaskStatus_NextWraps(t *testing.T) {
	assert.Equal(t, TaskInProgress, TaskTodo.Next())
	assert.Equal(t, TaskInReview, TaskInProgress.Next())
	assert.Equal(t, TaskDone, TaskInReview.Next())
	assert.Equal(t, TaskTodo, TaskDone.Next())
	assert.Equal(t, TaskTodo, TaskStatus("weird").Next())
}

func TestParseTaskStatus(t *testing.T) {
	for _, raw := range []string{"in_progress", "In Progress", "in-progress", "IN_PROGRESS"} {
		got, err := ParseTaskStatus(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, TaskInProgress, got)
	}

	_, err := ParseTaskStatus("blocked")
	assert.True(t, errors.Is(err, ErrInvalidStatus))
}

func TestParseProjectStatus(t *testing.T) {
	got, err := ParseProjectStatus("on hold")
	require.NoError(t, err)
	assert.Equal(t, ProjectOnHold, got)

	_, err = ParseProjectStatus("")
	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.False(t, ProjectStatus("deleted").Valid())
}

// ============================================================================
// Project Tests
// ============================================================================

func TestProject_DescriptionPreview(t *testing.T) {
	short := &Project{Description: "short"}
	assert.Equal(t, "short", short.DescriptionPreview())

	exact := &Project{Description: strings.Repeat("a", DescriptionPreviewLength)}
	assert.Equal(t, exact.Description, exact.DescriptionPreview())

	long := &Project{Description: strings.Repeat("b", DescriptionPreviewLength+1)}
	preview := long.DescriptionPreview()
	assert.Equal(t, strings.Repeat("b", DescriptionPreviewLength)+"...", preview)
}

func TestProject_DecodesServerPayload(t *testing.T) {
	payload := `{
		"id": "p1",
		"name": "Alpha",
		"description": null,
		"status": "active",
		"tenant_id": "t1",
		"created_at": "2024-03-01T10:20:30.123456"
	}`

	var p Project
	require.NoError(t, json.Unmarshal([]byte(payload), &p))
	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, "", p.Description)
	assert.Equal(t, ProjectActive, p.Status)
	assert.Equal(t, 2024, p.CreatedAt.Year())
	assert.True(t, p.HasID())
}

// ============================================================================
// Task Tests
// ============================================================================

func TestTask_AssigneeName(t *testing.T) {
	task := &Task{}
	assert.False(t, task.IsAssigned())
	assert.Equal(t, "", task.AssigneeName())

	task.Assignee = &Assignee{ID: "u1", Email: "bob@example.com"}
	assert.True(t, task.IsAssigned())
	assert.Equal(t, "bob@example.com", task.AssigneeName())

	task.Assignee.Username = "bob"
	assert.Equal(t, "bob", task.AssigneeName())
}

// ============================================================================
// Timestamp Tests
// ============================================================================

func TestTimestamp_Formats(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"rfc3339", `"2024-01-02T03:04:05Z"`},
		{"offset", `"2024-01-02T03:04:05+02:00"`},
		{"naive micro", `"2024-01-02T03:04:05.999999"`},
		{"space separated", `"2024-01-02 03:04:05"`},
		{"date only", `"2024-01-02"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &ts))
			assert.Equal(t, time.January, ts.Month())
			assert.Equal(t, 2, ts.Day())
		})
	}
}

// Edge case: null and empty strings leave the zero value rather than failing
func TestTimestamp_NullAndEmpty(t *testing.T) {
	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(`null`), &ts))
	assert.True(t, ts.IsZero())
	require.NoError(t, json.Unmarshal([]byte(`""`), &ts))
	assert.True(t, ts.IsZero())
	assert.Equal(t, "-", ts.Display())

	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
}
