package db

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// MemoryPath is the DSN for a private in-memory database.
const MemoryPath = ":memory:"

// OpenDB opens a SQLite database at the given path.
// If path is ":memory:", uses an in-memory database.
// Sets WAL mode and enables foreign keys.
// Runs migrations automatically.
func OpenDB(path string) (*sql.DB, error) {
	if path != MemoryPath {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Each pooled connection to :memory: would see its own empty database.
	if path == MemoryPath {
		db.SetMaxOpenConns(1)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return db, nil
}

// OpenOrReset opens the database at path and never fails because of what is
// on disk. An unreadable file is moved aside to "<path>.corrupt-<unix>" and a
// fresh database is created in its place. If that fails too, an in-memory
// database is returned so the session can continue without persistence.
// The returned path is the one actually in use.
func OpenOrReset(path string, logger *slog.Logger) (*sql.DB, string, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	db, err := OpenDB(path)
	if err == nil {
		return db, path, nil
	}
	if path == MemoryPath {
		return nil, "", err
	}

	openErr := err
	if _, statErr := os.Stat(path); statErr == nil {
		aside := fmt.Sprintf("%s.corrupt-%d", path, time.Now().Unix())
		if renameErr := os.Rename(path, aside); renameErr != nil {
			logger.Warn("state_db_move_aside_failed", "path", path, "error", renameErr)
		} else {
			// WAL side files belong to the broken database.
			_ = os.Remove(path + "-wal")
			_ = os.Remove(path + "-shm")
			logger.Warn("state_db_reset", "path", path, "moved_to", aside, "error", openErr)
			if db, err = OpenDB(path); err == nil {
				return db, path, nil
			}
		}
	}

	logger.Warn("state_db_fallback_memory", "path", path, "error", err)
	db, memErr := OpenDB(MemoryPath)
	if memErr != nil {
		return nil, "", errors.Join(openErr, memErr)
	}
	return db, MemoryPath, nil
}
