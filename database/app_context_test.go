package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirContext_DatabasePath(t *testing.T) {
	dir := t.TempDir()

	t.Run("Joins name onto directory", func(t *testing.T) {
		path, err := NewDirContext(dir).DatabasePath(DatabaseName)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "sleep_history_database"), path)
	})

	t.Run("Nil receiver is invalid", func(t *testing.T) {
		var c *DirContext
		_, err := c.DatabasePath(DatabaseName)
		assert.ErrorIs(t, err, ErrInvalidContext)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("Empty directory is invalid", func(t *testing.T) {
		_, err := NewDirContext("  ").DatabasePath(DatabaseName)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("Name may not escape the directory", func(t *testing.T) {
		_, err := NewDirContext(dir).DatabasePath("../elsewhere")
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestResolvePath_NilInterface(t *testing.T) {
	_, err := resolvePath(nil, DatabaseName)
	assert.ErrorIs(t, err, ErrInvalidContext)
}
