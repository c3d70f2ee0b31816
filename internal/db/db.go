package db

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"rankedlog/internal/config"
)

// Open builds the single process-wide database handle. Callers own its
// lifecycle: open once at startup, close at shutdown. MySQL when DB_DSN is
// configured, a local sqlite file otherwise.
func Open(cfg config.Config) (*gorm.DB, error) {
	if cfg.DBDSN != "" {
		gdb, err := gorm.Open(mysql.Open(cfg.DBDSN), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("mysql open: %w", err)
		}
		return gdb, nil
	}

	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("sqlite dir: %w", err)
		}
	}
	gdb, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}
	return gdb, nil
}

// Close releases the underlying sql.DB of a gorm handle.
func Close(gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
