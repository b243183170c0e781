package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/hito/internal/models"
)

func projects(ids ...string) []*models.Project {
	out := make([]*models.Project, 0, len(ids))
	for _, id := range ids {
		out = append(out, &models.Project{ID: id, Name: "Project " + id})
	}
	return out
}

func ids(list *ListState[*models.Project]) []string {
	var out []string
	for _, p := range list.Items() {
		out = append(out, p.ID)
	}
	return out
}

func TestListState_Selection(t *testing.T) {
	list := NewProjectListState()

	_, ok := list.Selected()
	assert.False(t, ok, "empty list has no selection")
	list.MoveDown()
	list.MoveUp()
	assert.Equal(t, 0, list.SelectedIndex())

	list.Set(projects("p1", "p2", "p3"))
	list.MoveDown()
	list.MoveDown()
	list.MoveDown()
	assert.Equal(t, 2, list.SelectedIndex(), "cursor stops at the last row")

	list.Set(projects("p1"))
	assert.Equal(t, 0, list.SelectedIndex(), "cursor is clamped when the list shrinks")
}

func TestListState_Prepend(t *testing.T) {
	list := NewProjectListState()
	list.Set(projects("p1", "p2"))
	list.MoveDown()

	list.Prepend(&models.Project{ID: "p3"})

	assert.Equal(t, []string{"p3", "p1", "p2"}, ids(list))
	selected, ok := list.Selected()
	require.True(t, ok)
	assert.Equal(t, "p3", selected.ID)
}

func TestListState_RemovePreservesOrder(t *testing.T) {
	list := NewProjectListState()
	list.Set(projects("p1", "p2", "p3"))
	list.MoveDown()
	list.MoveDown()

	assert.True(t, list.Remove("p2"))
	assert.Equal(t, []string{"p1", "p3"}, ids(list))
	assert.Equal(t, 1, list.SelectedIndex())

	assert.False(t, list.Remove("missing"))
	assert.Len(t, list.Items(), 2)

	assert.True(t, list.Remove("p3"))
	assert.Equal(t, 0, list.SelectedIndex())
}

func TestListState_ReplaceTouchesOnlyMatchingID(t *testing.T) {
	list := NewTaskListState()
	list.Set([]*models.Task{
		{ID: "t1", Title: "One", Status: models.TaskTodo},
		{ID: "t2", Title: "Two", Status: models.TaskTodo},
	})

	assert.True(t, list.Replace(&models.Task{ID: "t1", Title: "One", Status: models.TaskDone}))
	assert.Equal(t, models.TaskDone, list.Items()[0].Status)
	assert.Equal(t, models.TaskTodo, list.Items()[1].Status)

	assert.False(t, list.Replace(&models.Task{ID: "t9"}))
	assert.Len(t, list.Items(), 2)
}

func TestTaskListState_Details(t *testing.T) {
	list := NewTaskListState()
	list.Set([]*models.Task{{ID: "t1"}, {ID: "t2"}})

	list.ToggleDetails()
	assert.True(t, list.Expanded("t1"))
	assert.False(t, list.Expanded("t2"))

	list.ToggleDetails()
	assert.False(t, list.Expanded("t1"))

	list.ToggleDetails()
	list.Remove("t1")
	assert.False(t, list.Expanded("t1"))

	found, ok := list.Find("t2")
	require.True(t, ok)
	assert.Equal(t, "t2", found.ID)
}

func TestNotificationState(t *testing.T) {
	s := NewNotificationState()
	assert.False(t, s.HasAny())

	first := s.Add(LevelInfo, "saved")
	second := s.Add(LevelError, "failed")
	assert.NotEqual(t, first, second)
	require.Len(t, s.All(), 2)

	s.Dismiss(first)
	require.Len(t, s.All(), 1)
	assert.Equal(t, "failed", s.All()[0].Message)

	s.Dismiss(first)
	assert.Len(t, s.All(), 1)

	s.Clear()
	assert.False(t, s.HasAny())
}

func TestNotificationState_GetLayers(t *testing.T) {
	s := NewNotificationState()
	s.Add(LevelInfo, "one")
	s.Add(LevelInfo, "two")

	render := func(n Notification) string { return n.Message }
	assert.Empty(t, s.GetLayers(render), "nothing is drawn before the window size is known")

	s.SetWindowSize(80, 24)
	assert.Len(t, s.GetLayers(render), 2)

	s.SetWindowSize(80, 2)
	assert.Len(t, s.GetLayers(render), 1, "notifications below the screen are skipped")
}

func TestErrorState(t *testing.T) {
	s := NewErrorState()
	assert.False(t, s.HasError())
	s.Set("boom")
	assert.True(t, s.HasError())
	assert.Equal(t, "boom", s.Get())
	s.Clear()
	assert.Empty(t, s.Get())
}
