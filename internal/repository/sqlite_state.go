package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/VolkofAndrey/micro-rest-app/internal/db"
)

// SQLiteStateRepo implements StateRepo over the kv_state table.
type SQLiteStateRepo struct {
	db db.DBTX
}

func NewSQLiteStateRepo(conn db.DBTX) *SQLiteStateRepo {
	return &SQLiteStateRepo{db: conn}
}

func (r *SQLiteStateRepo) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM kv_state WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("state key %q: %w", key, ErrNotFound)
		}
		return "", fmt.Errorf("reading state key %q: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteStateRepo) Set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO kv_state (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, nowUTC())
	if err != nil {
		return fmt.Errorf("writing state key %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (r *SQLiteStateRepo) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM kv_state WHERE key = ?`, key); err != nil {
		return fmt.Errorf("deleting state key %q: %w", key, err)
	}
	return nil
}

func (r *SQLiteStateRepo) All(ctx context.Context) (map[string]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key, value FROM kv_state`)
	if err != nil {
		return nil, fmt.Errorf("listing state: %w", err)
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("scanning state row: %w", err)
		}
		out[k] = v
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating state rows: %w", err)
	}
	return out, nil
}
