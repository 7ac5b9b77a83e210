package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateLegacyActivityDate(db); err != nil {
		return fmt.Errorf("normalizing lastActivityDate: %w", err)
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS kv_state (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL
	)`,

	// updated_at was added after the first release; old rows get ''.
	`ALTER TABLE kv_state ADD COLUMN updated_at TEXT NOT NULL DEFAULT ''`,
}

const (
	isoDayLayout    = "2006-01-02"
	legacyDayLayout = "Mon Jan 02 2006"
)

// migrateLegacyActivityDate rewrites a lastActivityDate stored in the old
// "Mon Jan 02 2006" form as YYYY-MM-DD. Values that are already ISO, empty or
// unparseable are left for the store to handle on load.
func migrateLegacyActivityDate(db *sql.DB) error {
	ctx := context.Background()

	var value string
	err := db.QueryRowContext(ctx, `SELECT value FROM kv_state WHERE key = 'lastActivityDate'`).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading lastActivityDate: %w", err)
	}

	t, err := time.Parse(legacyDayLayout, strings.TrimSpace(value))
	if err != nil {
		return nil
	}

	_, err = db.ExecContext(ctx,
		`UPDATE kv_state SET value = ?, updated_at = ? WHERE key = 'lastActivityDate'`,
		t.Format(isoDayLayout), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("rewriting lastActivityDate: %w", err)
	}
	return nil
}
