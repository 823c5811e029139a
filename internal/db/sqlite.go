package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/champlain/campus/internal/pkg/logger"
)

const (
	sqliteDSNOptions   = "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_txlock=immediate"
	sqliteMaxOpenConns = 4
)

// SQLiteDB wraps a SQLite database handle
type SQLiteDB struct {
	DB   *sql.DB
	Path string
}

// NewSQLiteDB opens the SQLite file at path, creating parent directories as
// needed. The database runs in WAL mode.
func NewSQLiteDB(ctx context.Context, path string) (*SQLiteDB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+sqliteDSNOptions)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// WAL lets readers run next to an open listing cursor. Writers queue on
	// busy_timeout and take the write lock when their transaction begins.
	db.SetMaxOpenConns(sqliteMaxOpenConns)
	db.SetMaxIdleConns(sqliteMaxOpenConns)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to establish database connection: %w", err)
	}

	logger.Info().Str("path", path).Msg("Opened SQLite database")
	return &SQLiteDB{DB: db, Path: path}, nil
}

// Close closes the database handle
func (db *SQLiteDB) Close() error {
	if db.DB == nil {
		return nil
	}
	return db.DB.Close()
}
