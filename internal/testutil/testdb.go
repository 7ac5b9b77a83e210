package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/VolkofAndrey/micro-rest-app/internal/db"
)

// NewTestDB creates an in-memory SQLite database with all migrations applied.
// The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestDBPath returns a path for a file-backed database inside the test's
// temp directory. Use it when a test needs to close and reopen the same
// database.
func NewTestDBPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "microrest.db")
}

// NewTestUoW creates a UnitOfWork backed by the given test database.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
