package testutil

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/uptask/internal/database"
)

// SetupSessionDB creates a migrated session database in a temp dir
func SetupSessionDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "session.db")
	db, err := database.InitDB(context.Background(), path)
	if err != nil {
		t.Fatalf("Failed to create session database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return db
}
