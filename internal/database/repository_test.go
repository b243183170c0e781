package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates an in-memory database and runs migrations
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestRepository_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(setupTestDB(t))

	_, err := repo.GetValue(ctx, "token")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, repo.SetValue(ctx, "token", "abc"))
	got, err := repo.GetValue(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, "abc", got)

	require.NoError(t, repo.SetValue(ctx, "token", "def"))
	got, err = repo.GetValue(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, "def", got, "set replaces the previous value")

	require.NoError(t, repo.DeleteValue(ctx, "token"))
	_, err = repo.GetValue(ctx, "token")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	// Edge case: deleting a missing key is fine
	assert.NoError(t, repo.DeleteValue(ctx, "token"))
}

func TestRepository_Keys(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(setupTestDB(t))

	require.NoError(t, repo.SetValue(ctx, "b", "2"))
	require.NoError(t, repo.SetValue(ctx, "a", "1"))

	keys, err := repo.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, keys)
}

func TestMigrations_Idempotent(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)

	require.NoError(t, runMigrations(ctx, db))
	require.NoError(t, runMigrations(ctx, db))

	var version int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT MAX(version) FROM schema_version").Scan(&version))
	assert.Equal(t, len(migrations), version)
}

// Values survive closing and reopening the file-backed store
func TestInitDB_Persists(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	db, err := InitDB(ctx, dir)
	require.NoError(t, err)
	require.NoError(t, NewRepository(db).SetValue(ctx, "token", "persisted"))
	require.NoError(t, db.Close())

	assert.FileExists(t, filepath.Join(dir, FileName))

	db, err = InitDB(ctx, dir)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	got, err := NewRepository(db).GetValue(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, "persisted", got)
}
