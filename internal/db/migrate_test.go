package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesStateTable(t *testing.T) {
	db := openTestDB(t)

	var name string
	err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='kv_state'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "kv_state", name)

	_, err = db.Exec(`INSERT INTO kv_state (key, value, updated_at) VALUES ('theme', 'true', 'now')`)
	require.NoError(t, err)
}

func TestMigrate_KeyIsUnique(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO kv_state (key, value, updated_at) VALUES ('streak', '1', '')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO kv_state (key, value, updated_at) VALUES ('streak', '2', '')`)
	assert.Error(t, err)
}
