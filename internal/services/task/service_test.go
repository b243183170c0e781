package task

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/hito/internal/api"
	"github.com/thenoetrevino/hito/internal/models"
	"github.com/thenoetrevino/hito/internal/session"
	"github.com/thenoetrevino/hito/internal/testutil"
)

func setupService(t *testing.T) (*testutil.FakeAPI, Service, *models.Project) {
	t.Helper()
	fake := testutil.NewFakeAPI(t)
	project := fake.AddProject("Alpha", "", models.ProjectActive)
	client := api.NewClient(fake.URL(), session.NewMemorySession(fake.Token()))
	return fake, NewService(client), project
}

func strPtr(s string) *string { return &s }

func TestGetTasks(t *testing.T) {
	fake, svc, p := setupService(t)
	fake.AddTask(p.ID, "First", models.TaskTodo)
	fake.AddTask(p.ID, "Second", models.TaskDone)

	tasks, err := svc.GetTasks(context.Background(), p.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "Second", tasks[1].Title)
	assert.Equal(t, models.TaskDone, tasks[1].Status)
}

// Edge case: a null body is an empty list
func TestGetTasks_Null(t *testing.T) {
	fake, svc, p := setupService(t)
	fake.Respond(http.MethodGet, "/projects/"+p.ID+"/tasks/", http.StatusOK, "null")

	tasks, err := svc.GetTasks(context.Background(), p.ID)
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestGetTasks_ErrorMessage(t *testing.T) {
	fake, svc, p := setupService(t)
	fake.Respond(http.MethodGet, "/projects/"+p.ID+"/tasks/", http.StatusForbidden, nil)

	_, err := svc.GetTasks(context.Background(), p.ID)
	assert.EqualError(t, err, "You don't have permission to fetch tasks.")
}

func TestCreateTask(t *testing.T) {
	fake, svc, p := setupService(t)

	task, err := svc.CreateTask(context.Background(), p.ID, CreateTaskRequest{Title: "Write docs", Description: "all of them"})
	require.NoError(t, err)
	assert.Equal(t, "Write docs", task.Title)
	assert.Equal(t, models.TaskTodo, task.Status)
	assert.Equal(t, p.ID, task.ProjectID)

	reqs := fake.RequestsTo(http.MethodPost, "/projects/"+p.ID+"/tasks/")
	require.Len(t, reqs, 1)
	assert.Equal(t, map[string]any{"title": "Write docs", "description": "all of them", "status": "todo"}, reqs[0].JSON())
}

func TestCreateTask_LocalValidation(t *testing.T) {
	fake, svc, p := setupService(t)
	ctx := context.Background()

	_, err := svc.CreateTask(ctx, p.ID, CreateTaskRequest{Title: " "})
	assert.ErrorIs(t, err, ErrEmptyTitle)

	_, err = svc.CreateTask(ctx, p.ID, CreateTaskRequest{Title: "x", Status: "blocked"})
	assert.ErrorIs(t, err, models.ErrInvalidStatus)

	_, err = svc.CreateTask(ctx, "", CreateTaskRequest{Title: "x"})
	assert.ErrorIs(t, err, ErrInvalidProjectID)

	assert.Empty(t, fake.RequestsTo(http.MethodPost, "/projects/"+p.ID+"/tasks/"))
}

func TestUpdateTask_Partial(t *testing.T) {
	fake, svc, p := setupService(t)
	existing := fake.AddTask(p.ID, "Old", models.TaskTodo)

	updated, err := svc.UpdateTask(context.Background(), p.ID, existing.ID, UpdateTaskRequest{Title: strPtr("New")})
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Title)
	assert.Equal(t, models.TaskTodo, updated.Status)

	reqs := fake.RequestsTo(http.MethodPatch, "/projects/"+p.ID+"/tasks/"+existing.ID)
	require.Len(t, reqs, 1)
	assert.Equal(t, map[string]any{"title": "New"}, reqs[0].JSON())
}

func TestUpdateTask_SetAndClearAssignee(t *testing.T) {
	fake, svc, p := setupService(t)
	ctx := context.Background()
	existing := fake.AddTask(p.ID, "Task", models.TaskTodo)

	updated, err := svc.UpdateTask(ctx, p.ID, existing.ID, UpdateTaskRequest{AssigneeID: strPtr(testutil.TestUserID)})
	require.NoError(t, err)
	require.NotNil(t, updated.Assignee)
	assert.Equal(t, testutil.TestUsername, updated.AssigneeName())

	updated, err = svc.UpdateTask(ctx, p.ID, existing.ID, UpdateTaskRequest{ClearAssignee: true})
	require.NoError(t, err)
	assert.False(t, updated.IsAssigned())

	reqs := fake.RequestsTo(http.MethodPatch, "/projects/"+p.ID+"/tasks/"+existing.ID)
	require.Len(t, reqs, 2)
	assert.Equal(t, `{"assignee_id":null}`, string(reqs[1].Body))
}

func TestUpdateTask_Validation(t *testing.T) {
	_, svc, p := setupService(t)
	ctx := context.Background()

	_, err := svc.UpdateTask(ctx, p.ID, "t1", UpdateTaskRequest{})
	assert.ErrorIs(t, err, ErrNothingToUpdate)

	_, err = svc.UpdateTask(ctx, p.ID, "t1", UpdateTaskRequest{AssigneeID: strPtr("u1"), ClearAssignee: true})
	assert.ErrorIs(t, err, ErrAssigneeConflict)

	_, err = svc.UpdateTask(ctx, p.ID, "", UpdateTaskRequest{Title: strPtr("x")})
	assert.ErrorIs(t, err, ErrInvalidTaskID)
}

func TestUpdateTaskStatus(t *testing.T) {
	fake, svc, p := setupService(t)
	existing := fake.AddTask(p.ID, "Task", models.TaskTodo)

	updated, err := svc.UpdateTaskStatus(context.Background(), p.ID, existing.ID, models.TaskInReview)
	require.NoError(t, err)
	assert.Equal(t, models.TaskInReview, updated.Status)

	_, err = svc.UpdateTaskStatus(context.Background(), p.ID, existing.ID, "blocked")
	assert.ErrorIs(t, err, models.ErrInvalidStatus)
}

func TestAssignTask(t *testing.T) {
	fake, svc, p := setupService(t)
	existing := fake.AddTask(p.ID, "Task", models.TaskTodo)
	bob := fake.AddUser("bob", "bob@example.com", "pw123456")

	updated, err := svc.AssignTask(context.Background(), p.ID, existing.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob", updated.AssigneeName())

	reqs := fake.RequestsTo(http.MethodPatch, "/projects/"+p.ID+"/tasks/"+existing.ID+"/assign")
	require.Len(t, reqs, 1)
	assert.Equal(t, map[string]any{"userId": bob.ID}, reqs[0].JSON())

	_, err = svc.AssignTask(context.Background(), p.ID, existing.ID, "ghost")
	assert.EqualError(t, err, "The requested resource was not found.")
}

func TestDeleteTask(t *testing.T) {
	fake, svc, p := setupService(t)
	existing := fake.AddTask(p.ID, "Task", models.TaskTodo)

	require.NoError(t, svc.DeleteTask(context.Background(), p.ID, existing.ID))
	assert.Empty(t, fake.Tasks(p.ID))

	err := svc.DeleteTask(context.Background(), p.ID, existing.ID)
	assert.EqualError(t, err, "The requested resource was not found.")
}
