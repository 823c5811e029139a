package db

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSQLiteDB_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "courses.db")

	sqlite, err := NewSQLiteDB(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, sqlite.Close()) })

	_, err = os.Stat(filepath.Dir(path))
	assert.NoError(t, err)

	var mode string
	require.NoError(t, sqlite.DB.QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)
}
