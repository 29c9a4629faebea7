package tests

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/orbitln/orbithub/db"
	"github.com/orbitln/orbithub/db/migrations"
	"github.com/orbitln/orbithub/logger"
)

var loggerOnce sync.Once

// InitLogger initializes the global logger once for the whole test binary,
// at error level to keep test output readable.
func InitLogger() {
	loggerOnce.Do(func() {
		logger.Init("2")
	})
}

// CreateTestDB opens a throwaway sqlite database with migrations applied.
// The file lives in the test's temp dir and is removed with it.
func CreateTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	InitLogger()

	gormDB, err := db.NewDB(filepath.Join(t.TempDir(), "test.db"), false)
	require.NoError(t, err)
	require.NoError(t, migrations.Migrate(gormDB))

	t.Cleanup(func() {
		_ = db.Stop(gormDB)
	})

	return gormDB
}
