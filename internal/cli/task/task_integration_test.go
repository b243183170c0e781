package task

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/hito/internal/cli"
	"github.com/thenoetrevino/hito/internal/config"
	"github.com/thenoetrevino/hito/internal/models"
	"github.com/thenoetrevino/hito/internal/testutil"
	clitest "github.com/thenoetrevino/hito/internal/testutil/cli"
)

func TestListTasks(t *testing.T) {
	fake, app := clitest.SetupCLITest(t)
	p := fake.AddProject("Website", "", models.ProjectActive)
	t1 := fake.AddTask(p.ID, "Write copy", models.TaskTodo)
	t2 := fake.AddTask(p.ID, "Ship it", models.TaskDone)

	t.Run("human readable", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--project", p.ID})
		require.NoError(t, err)
		assert.Contains(t, output, "Found 2 tasks")
		assert.Contains(t, output, "Write copy")
		assert.Contains(t, output, "Done")
	})

	t.Run("quiet", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--project", p.ID, "--quiet"})
		require.NoError(t, err)
		assert.Equal(t, []string{t1.ID, t2.ID}, strings.Split(strings.TrimSpace(output), "\n"))
	})

	t.Run("status filter", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--project", p.ID, "--status", "done", "--json"})
		require.NoError(t, err)

		var result struct {
			Tasks []*models.Task `json:"tasks"`
		}
		require.NoError(t, json.Unmarshal([]byte(output), &result))
		require.Len(t, result.Tasks, 1)
		assert.Equal(t, t2.ID, result.Tasks[0].ID)
	})

	t.Run("unknown project", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--project", "missing"})
		require.Error(t, err)
		assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
	})

	t.Run("project required", func(t *testing.T) {
		t.Setenv(config.EnvProject, "")
		_, err := clitest.ExecuteCLICommand(t, app, ListCmd(), nil)
		require.Error(t, err)
		assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
	})

	t.Run("project from environment", func(t *testing.T) {
		t.Setenv(config.EnvProject, p.ID)
		output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--quiet"})
		require.NoError(t, err)
		assert.NotEmpty(t, strings.TrimSpace(output))
	})
}

func TestShowTask(t *testing.T) {
	fake, app := clitest.SetupCLITest(t)
	p := fake.AddProject("Website", "", models.ProjectActive)
	task := fake.AddTask(p.ID, "Write copy", models.TaskInReview)

	output, err := clitest.ExecuteCLICommand(t, app, ShowCmd(), []string{task.ID, "--project", p.ID})
	require.NoError(t, err)
	assert.Contains(t, output, "Write copy")
	assert.Contains(t, output, "In Review")
	assert.Contains(t, output, "Unassigned")

	_, err = clitest.ExecuteCLICommand(t, app, ShowCmd(), []string{"--project", p.ID})
	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))

	_, err = clitest.ExecuteCLICommand(t, app, ShowCmd(), []string{"nope", "--project", p.ID})
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
}

func TestCreateTask(t *testing.T) {
	fake, app := clitest.SetupCLITest(t)
	p := fake.AddProject("Website", "", models.ProjectActive)

	t.Run("defaults to todo", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, CreateCmd(), []string{"--project", p.ID, "--title", "Write copy", "--quiet"})
		require.NoError(t, err)

		id := strings.TrimSpace(output)
		tasks := fake.Tasks(p.ID)
		require.Len(t, tasks, 1)
		assert.Equal(t, id, tasks[0].ID)
		assert.Equal(t, models.TaskTodo, tasks[0].Status)

		body := fake.RequestsTo(http.MethodPost, "/projects/"+p.ID+"/tasks/")[0].JSON()
		assert.NotContains(t, body, "assignee_id")
	})

	t.Run("with assignee and status", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, CreateCmd(), []string{
			"--project", p.ID, "--title", "Review", "--status", "in-review", "--assignee", testutil.TestUserID, "--json",
		})
		require.NoError(t, err)

		var result struct {
			Task *models.Task `json:"task"`
		}
		require.NoError(t, json.Unmarshal([]byte(output), &result))
		assert.Equal(t, models.TaskInReview, result.Task.Status)
		assert.Equal(t, testutil.TestUsername, result.Task.AssigneeName())
	})

	t.Run("invalid status never reaches the server", func(t *testing.T) {
		before := len(fake.Requests())
		_, err := clitest.ExecuteCLICommand(t, app, CreateCmd(), []string{"--project", p.ID, "--title", "X", "--status", "blocked"})
		require.Error(t, err)
		assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
		assert.Len(t, fake.Requests(), before)
	})

	t.Run("server validation error", func(t *testing.T) {
		fake.Respond(http.MethodPost, "/projects/"+p.ID+"/tasks/", http.StatusUnprocessableEntity, map[string]any{
			"detail": []any{map[string]any{"msg": "Title too long"}},
		})
		defer fake.Reset(http.MethodPost, "/projects/"+p.ID+"/tasks/")

		output, err := clitest.ExecuteCLICommand(t, app, CreateCmd(), []string{"--project", p.ID, "--title", "X", "--json"})
		require.Error(t, err)
		assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
		errData := testutil.ParseJSON(t, output)["error"].(map[string]any)
		assert.Equal(t, "Title too long", errData["message"])
	})
}

func TestUpdateTask(t *testing.T) {
	fake, app := clitest.SetupCLITest(t)
	p := fake.AddProject("Website", "", models.ProjectActive)
	task := fake.AddTask(p.ID, "Write copy", models.TaskTodo)
	path := "/projects/" + p.ID + "/tasks/" + task.ID

	t.Run("partial", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, UpdateCmd(), []string{task.ID, "--project", p.ID, "--title", "Rewrite copy"})
		require.NoError(t, err)

		reqs := fake.RequestsTo(http.MethodPatch, path)
		require.Len(t, reqs, 1)
		assert.Equal(t, map[string]any{"title": "Rewrite copy"}, reqs[0].JSON())
	})

	t.Run("assign then unassign", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, UpdateCmd(), []string{task.ID, "--project", p.ID, "--assignee", testutil.TestUserID})
		require.NoError(t, err)
		assert.True(t, fake.Tasks(p.ID)[0].IsAssigned())

		_, err = clitest.ExecuteCLICommand(t, app, UpdateCmd(), []string{task.ID, "--project", p.ID, "--unassign"})
		require.NoError(t, err)
		assert.False(t, fake.Tasks(p.ID)[0].IsAssigned())

		reqs := fake.RequestsTo(http.MethodPatch, path)
		body := reqs[len(reqs)-1].JSON()
		assert.Contains(t, body, "assignee_id")
		assert.Nil(t, body["assignee_id"])
	})

	t.Run("nothing to update", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, UpdateCmd(), []string{task.ID, "--project", p.ID})
		require.Error(t, err)
		assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
	})

	t.Run("blank title", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, UpdateCmd(), []string{task.ID, "--project", p.ID, "--title", " "})
		require.Error(t, err)
		assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
	})
}

func TestDeleteTask(t *testing.T) {
	fake, app := clitest.SetupCLITest(t)
	p := fake.AddProject("Website", "", models.ProjectActive)

	t.Run("force", func(t *testing.T) {
		task := fake.AddTask(p.ID, "Old", models.TaskTodo)
		_, err := clitest.ExecuteCLICommand(t, app, DeleteCmd(), []string{task.ID, "--project", p.ID, "--force"})
		require.NoError(t, err)
		assert.Empty(t, fake.Tasks(p.ID))
	})

	t.Run("declined", func(t *testing.T) {
		task := fake.AddTask(p.ID, "Keep", models.TaskTodo)
		cmd := DeleteCmd()
		cmd.SetIn(strings.NewReader("\n"))

		output, err := clitest.ExecuteCLICommand(t, app, cmd, []string{task.ID, "--project", p.ID})
		require.NoError(t, err)
		assert.Contains(t, output, "Cancelled")
		assert.Len(t, fake.Tasks(p.ID), 1)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, DeleteCmd(), []string{"missing", "--project", p.ID, "--force"})
		require.Error(t, err)
		assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
	})
}

func TestAssignTask(t *testing.T) {
	fake, app := clitest.SetupCLITest(t)
	p := fake.AddProject("Website", "", models.ProjectActive)
	task := fake.AddTask(p.ID, "Write copy", models.TaskTodo)
	bob := fake.AddUser("bob", "bob@example.com", "password123")

	output, err := clitest.ExecuteCLICommand(t, app, AssignCmd(), []string{task.ID, "--project", p.ID, "--user", bob.ID})
	require.NoError(t, err)
	assert.Contains(t, output, "assigned to bob")

	reqs := fake.RequestsTo(http.MethodPatch, "/projects/"+p.ID+"/tasks/"+task.ID+"/assign")
	require.Len(t, reqs, 1)
	assert.Equal(t, map[string]any{"userId": bob.ID}, reqs[0].JSON())
}

func TestTaskStatus(t *testing.T) {
	fake, app := clitest.SetupCLITest(t)
	p := fake.AddProject("Website", "", models.ProjectActive)
	task := fake.AddTask(p.ID, "Write copy", models.TaskDone)

	t.Run("next wraps", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, StatusCmd(), []string{task.ID, "--next", "--project", p.ID, "--quiet"})
		require.NoError(t, err)
		assert.Equal(t, "todo", strings.TrimSpace(output))
		assert.Equal(t, models.TaskTodo, fake.Tasks(p.ID)[0].Status)
	})

	t.Run("explicit", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, StatusCmd(), []string{task.ID, "In Progress", "--project", p.ID})
		require.NoError(t, err)
		assert.Equal(t, models.TaskInProgress, fake.Tasks(p.ID)[0].Status)
	})

	t.Run("status and next together", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, StatusCmd(), []string{task.ID, "done", "--next", "--project", p.ID})
		require.Error(t, err)
		assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, StatusCmd(), []string{task.ID, "blocked", "--project", p.ID})
		require.Error(t, err)
		assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
	})
}

func TestTaskCommands_NotLoggedIn(t *testing.T) {
	fake, app := clitest.SetupLoggedOutCLITest(t)

	_, err := clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--project", "p1"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitUnauthenticated, cli.ExitCode(err))
	assert.Empty(t, fake.Requests())
}
