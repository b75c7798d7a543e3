// Package dbtest provides migrated SQLite databases for tests.
package dbtest

import (
	"path/filepath"
	"testing"

	"travel-backend/internal/database"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// New returns a migrated database in a per-test temp directory.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), database.GormConfig())
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}
