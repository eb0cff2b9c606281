package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDB_CreatesPreferencesTable(t *testing.T) {
	database, err := OpenDB(MemoryPath)
	require.NoError(t, err)
	defer database.Close()

	var name string
	err = database.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'preferences'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "preferences", name)
}

func TestMigrate_IsIdempotent(t *testing.T) {
	database, err := OpenDB(MemoryPath)
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, Migrate(database))
	require.NoError(t, Migrate(database))
}

func TestOpenDB_FileSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "promocal.db")

	first, err := OpenDB(path)
	require.NoError(t, err)
	_, err = first.Exec(`INSERT INTO preferences (key, value, updated_at) VALUES ('theme', 'dark', '2026-01-01T00:00:00Z')`)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := OpenDB(path)
	require.NoError(t, err)
	defer second.Close()

	var value string
	require.NoError(t, second.QueryRow(`SELECT value FROM preferences WHERE key = 'theme'`).Scan(&value))
	assert.Equal(t, "dark", value)
}
