package testutil

import (
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/replyguy/replyguy/internal/db"
)

// GetEmptyTestDB returns a migrated SQLite database backed by a temp file.
func GetEmptyTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "replyguy.db")
	database, err := db.Init("sqlite", path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})

	err = db.RunMigrations(database.DB, "sqlite")
	if err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	return database
}
