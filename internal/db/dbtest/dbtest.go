// Package dbtest opens throwaway SQLite databases with the schema applied,
// giving tests a real relational store with foreign keys enforced.
package dbtest

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/yigit/salesweb/internal/config"
	"github.com/yigit/salesweb/internal/db"
	"github.com/yigit/salesweb/internal/pkg/logger"
)

// New returns a migrated database living in the test's temp dir
func New(tb testing.TB) *db.DB {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), "salesweb_test.db")
	database, err := db.OpenDSN(config.DriverSQLite, config.SQLiteDSN(path))
	if err != nil {
		tb.Fatalf("db.OpenDSN() failed: %v", err)
	}
	tb.Cleanup(func() { database.Close() })

	if err := database.Migrate(context.Background(), logger.Nop()); err != nil {
		tb.Fatalf("migrating test database: %v", err)
	}

	return database
}
