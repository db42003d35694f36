package database

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// resetInstance forgets the shared handle so each test starts from an empty cell
func resetInstance(t *testing.T) {
	t.Helper()

	instanceMu.Lock()
	defer instanceMu.Unlock()

	if db := instance.Swap(nil); db != nil {
		db.db.Close()
	}
}

func setupTestContext(t *testing.T) *DirContext {
	t.Helper()

	resetInstance(t)
	t.Cleanup(func() { resetInstance(t) })

	return NewDirContext(t.TempDir())
}

func buildTestDB(t *testing.T, appCtx AppContext, cfg Config) *DB {
	t.Helper()

	db, err := Build(appCtx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func tableNames(t *testing.T, db *DB) []string {
	t.Helper()

	objects, err := db.schemaObjects()
	require.NoError(t, err)

	names := make([]string, 0, len(objects))
	for _, obj := range objects {
		names = append(names, obj.name)
	}
	return names
}
