package db

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDB_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "state.db")

	db, err := OpenDB(path)
	require.NoError(t, err)
	defer db.Close()

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestOpenOrReset_HealthyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")

	db, used, err := OpenOrReset(path, nil)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO kv_state (key, value, updated_at) VALUES ('streak', '3', '')`)
	require.NoError(t, err)
	require.NoError(t, db.Close())
	assert.Equal(t, path, used)

	db, _, err = OpenOrReset(path, nil)
	require.NoError(t, err)
	defer db.Close()

	var v string
	require.NoError(t, db.QueryRow(`SELECT value FROM kv_state WHERE key='streak'`).Scan(&v))
	assert.Equal(t, "3", v)
}

func TestOpenOrReset_MovesCorruptFileAside(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state.db")
	garbage := bytes.Repeat([]byte("this is not a sqlite database "), 64)
	require.NoError(t, os.WriteFile(path, garbage, 0o644))

	db, used, err := OpenOrReset(path, nil)
	require.NoError(t, err)
	defer db.Close()
	assert.Equal(t, path, used)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var aside string
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "state.db.corrupt-") {
			aside = e.Name()
		}
	}
	require.NotEmpty(t, aside, "corrupt file should be preserved next to the new one")

	kept, err := os.ReadFile(filepath.Join(dir, aside))
	require.NoError(t, err)
	assert.Equal(t, garbage, kept)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM kv_state`).Scan(&n))
	assert.Zero(t, n)
}

func TestOpenOrReset_MemoryPath(t *testing.T) {
	db, used, err := OpenOrReset(MemoryPath, nil)
	require.NoError(t, err)
	defer db.Close()
	assert.Equal(t, MemoryPath, used)
}
