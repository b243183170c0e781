package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/hito/internal/api"
	"github.com/thenoetrevino/hito/internal/config"
	"github.com/thenoetrevino/hito/internal/session"
	"github.com/thenoetrevino/hito/internal/testutil"
)

func TestNew(t *testing.T) {
	sess := session.NewMemorySession("")
	app := New(api.NewClient("http://localhost:8000/api", sess), sess)

	assert.NotNil(t, app.AuthService)
	assert.NotNil(t, app.ProjectService)
	assert.NotNil(t, app.TaskService)
	assert.NotNil(t, app.UserService)
	assert.NoError(t, app.Close())
}

// Login through one App is visible to a second App opened on the same
// data directory
func TestOpen_PersistsSession(t *testing.T) {
	ctx := context.Background()
	fake := testutil.NewFakeAPI(t)

	cfg := config.Default()
	cfg.APIURL = fake.URL()
	cfg.DataDir = t.TempDir()

	first, err := Open(ctx, cfg)
	require.NoError(t, err)
	assert.False(t, first.Session.IsAuthenticated())

	_, err = first.AuthService.Login(ctx, testutil.TestEmail, testutil.TestPassword)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := Open(ctx, cfg)
	require.NoError(t, err)
	defer func() { _ = second.Close() }()

	assert.True(t, second.Session.IsAuthenticated())
	projects, err := second.ProjectService.GetProjects(ctx)
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestOpen_WithSessionStore(t *testing.T) {
	cfg := config.Default()
	cfg.DataDir = t.TempDir()

	app, err := Open(context.Background(), cfg, WithSessionStore(session.NewMemoryStore("abc")))
	require.NoError(t, err)
	assert.Equal(t, "abc", app.Session.Token())
	assert.NoError(t, app.Close())
}
