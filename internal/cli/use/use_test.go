package use

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/hito/internal/cli"
	"github.com/thenoetrevino/hito/internal/config"
	"github.com/thenoetrevino/hito/internal/models"
	clitest "github.com/thenoetrevino/hito/internal/testutil/cli"
)

func TestUseProject(t *testing.T) {
	fake, app := clitest.SetupCLITest(t)
	p := fake.AddProject("Website", "", models.ProjectActive)

	t.Run("exports the project", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ProjectCmd(), []string{p.ID})
		require.NoError(t, err)
		assert.Equal(t, "export HITO_PROJECT='"+p.ID+"'\n", output)
		assert.Len(t, fake.RequestsTo(http.MethodGet, "/projects/"+p.ID), 1)
	})

	t.Run("dry run prints nothing to eval", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ProjectCmd(), []string{p.ID, "--dry-run"})
		require.NoError(t, err)
		assert.Empty(t, output)
	})

	t.Run("unknown project", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ProjectCmd(), []string{"missing"})
		require.Error(t, err)
		assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
		assert.NotContains(t, output, "export")
	})

	t.Run("id required", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, ProjectCmd(), nil)
		assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
	})

	t.Run("clear", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ProjectCmd(), []string{"--clear"})
		require.NoError(t, err)
		assert.Equal(t, "unset HITO_PROJECT\n", output)
	})
}

func TestUseProject_Show(t *testing.T) {
	fake, app := clitest.SetupCLITest(t)
	p := fake.AddProject("Website", "", models.ProjectActive)

	t.Setenv(config.EnvProject, "")
	output, err := clitest.ExecuteCLICommand(t, app, ProjectCmd(), []string{"--show"})
	require.NoError(t, err)
	assert.Contains(t, output, "No project context set")

	t.Setenv(config.EnvProject, p.ID)
	output, err = clitest.ExecuteCLICommand(t, app, ProjectCmd(), []string{"--show"})
	require.NoError(t, err)
	assert.Contains(t, output, "Current project: "+p.ID+" (Website)")
}

func TestUseProject_RequiresLogin(t *testing.T) {
	fake, app := clitest.SetupLoggedOutCLITest(t)

	_, err := clitest.ExecuteCLICommand(t, app, ProjectCmd(), []string{"p1"})
	assert.Equal(t, cli.ExitUnauthenticated, cli.ExitCode(err))
	assert.Empty(t, fake.Requests())
}
