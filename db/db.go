package db

import (
	"fmt"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewDB opens the sqlite database at the given uri. Schema migrations are
// run separately by the caller (see db/migrations).
func NewDB(uri string, logDBQueries bool) (*gorm.DB, error) {
	// busy_timeout prevents SQLITE_BUSY errors when the catalog sync and an
	// API request hit the database at the same time
	if !strings.Contains(uri, "?") {
		uri = uri + "?_busy_timeout=5000&_journal_mode=WAL"
	}

	logLevel := gormlogger.Silent
	if logDBQueries {
		logLevel = gormlogger.Info
	}

	gormDB, err := gorm.Open(sqlite.Open(uri), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return gormDB, nil
}

func Stop(gormDB *gorm.DB) error {
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
