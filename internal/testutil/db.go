package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/hito/internal/database"
)

// SetupTestDB opens a migrated in-memory local store closed at test end
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("Failed to close test database: %v", err)
		}
	})
	return db
}
