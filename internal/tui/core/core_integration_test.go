package core

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/hito/internal/config"
	clitest "github.com/thenoetrevino/hito/internal/testutil/cli"
	"github.com/thenoetrevino/hito/internal/tui"
)

func TestAppImplementsTeaModel(t *testing.T) {
	_, appInstance := clitest.SetupCLITest(t)

	app := New(context.Background(), appInstance, config.Default())

	var _ tea.Model = app
	require.NotNil(t, app.GetModel())
}

func TestApp_StartsOnDashboardWhenLoggedIn(t *testing.T) {
	_, appInstance := clitest.SetupCLITest(t)
	app := New(context.Background(), appInstance, config.Default())

	assert.Equal(t, "Loading...", app.View().Content)

	app.Init()
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	assert.Equal(t, tui.RouteDashboard, app.GetModel().Location().Route)
	assert.True(t, app.View().AltScreen)
	assert.Contains(t, app.View().Content, "Projects")
}

func TestApp_StartsOnLoginWithoutSession(t *testing.T) {
	fake, appInstance := clitest.SetupLoggedOutCLITest(t)
	app := New(context.Background(), appInstance, config.Default())

	app.Init()

	assert.Equal(t, tui.RouteLogin, app.GetModel().Location().Route)
	assert.Empty(t, fake.Requests(), "the guard runs before any page loads data")
}
