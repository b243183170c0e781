package user

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/hito/internal/api"
	"github.com/thenoetrevino/hito/internal/session"
	"github.com/thenoetrevino/hito/internal/testutil"
)

func setupService(t *testing.T) (*testutil.FakeAPI, Service) {
	t.Helper()
	fake := testutil.NewFakeAPI(t)
	return fake, NewService(api.NewClient(fake.URL(), session.NewMemorySession(fake.Token())))
}

func TestGetCurrentUser(t *testing.T) {
	_, svc := setupService(t)

	u, err := svc.GetCurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testutil.TestUserID, u.ID)
	assert.Equal(t, testutil.TestTenantID, u.TenantID)
	assert.Equal(t, testutil.TestUsername, u.DisplayName())
}

func TestGetUsersByTenant(t *testing.T) {
	fake, svc := setupService(t)
	fake.AddUser("bob", "bob@example.com", "password123")

	users, err := svc.GetUsersByTenant(context.Background(), testutil.TestTenantID)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	_, err = svc.GetUsersByTenant(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidTenantID)
}

func TestGetUsersByTenant_ErrorsAreNormalized(t *testing.T) {
	fake, svc := setupService(t)
	fake.Respond(http.MethodGet, "/tenants/t1/users", http.StatusForbidden, map[string]any{"detail": "admins only"})

	_, err := svc.GetUsersByTenant(context.Background(), "t1")
	assert.EqualError(t, err, "You don't have permission to fetch users.")
}
