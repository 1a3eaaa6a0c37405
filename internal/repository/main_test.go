package repository_test

import (
	"path/filepath"
	"testing"

	"aratrack/internal/infra"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens a fresh SQLite store with the full schema applied.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := infra.NewDatabase(infra.DatabaseOptions{
		Driver:        infra.DriverSQLite,
		DSN:           filepath.Join(t.TempDir(), "aratrack.db"),
		BusyTimeoutMS: 2000,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}
