package database

import (
	"database/sql"
	"fmt"
	"log"
	"runtime"

	_ "github.com/mattn/go-sqlite3"
)

// DefaultPath is the per-OS database file next to the binary.
func DefaultPath() string {
	return fmt.Sprintf("./%s.db", runtime.GOOS)
}

// Init opens the sqlite database at path and creates the tables the app uses.
func Init(path string, appLogger *log.Logger) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?_busy_timeout=10000", path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	appLogger.Println("DB connection success!", path)

	if err := setupTables(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func setupTables(db *sql.DB) error {
	tables := []string{
		"CREATE TABLE IF NOT EXISTS `Options`(`id` INTEGER PRIMARY KEY NOT NULL, `DatabasePath` VARCHAR(255) NOT NULL, `DiscreteWheel` BOOLEAN DEFAULT false, `Profiling` BOOLEAN DEFAULT false, `ProfilingServer` VARCHAR(255) NOT NULL DEFAULT '', `ExportFormat` VARCHAR(8) NOT NULL DEFAULT 'PNG', `ExportSize` INTEGER NOT NULL DEFAULT 256, `FirstBoot` BOOLEAN DEFAULT false);",
		"PRAGMA journal_mode=WAL;",
	}
	for _, table := range tables {
		if _, err := db.Exec(table); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	return nil
}
