package database

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewTestDB returns an empty, fully migrated in-memory SQLite database that
// is closed when the test ends.
func NewTestDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared&_foreign_keys=on"
	db, err := OpenSQLite(dsn, false)
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
