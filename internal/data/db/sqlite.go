package db

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yungbote/coursehub-backend/internal/platform/logger"
)

const DefaultSQLiteDSN = "file::memory:?cache=shared&_foreign_keys=1"

// MemoryDSN names a private shared-cache in-memory database.
func MemoryDSN(name string) string {
	return fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", name)
}

func openSQLite(dsn string, logg *logger.Logger) (*gorm.DB, error) {
	if dsn == "" {
		dsn = DefaultSQLiteDSN
	}
	logg.Info("Opening SQLite store...", "sqlite_dsn", dsn)
	db, err := gorm.Open(sqlite.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sqlite pool: %w", err)
	}
	// A single connection keeps an in-memory database alive and avoids
	// shared-cache table locks between writers.
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}
