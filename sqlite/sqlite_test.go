package sqlite_test

import (
	"context"
	"testing"

	"github.com/mlipski/siteql/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB opens an in-memory database with the schema created.
func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()

	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestDB_Open(t *testing.T) {
	t.Parallel()

	t.Run("creates schema on first open", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)

		var count int
		err := db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM scraped_data").Scan(&count)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("open is idempotent across connections", func(t *testing.T) {
		t.Parallel()

		path := t.TempDir() + "/test.db"

		db := sqlite.NewDB(path)
		require.NoError(t, db.Open())
		require.NoError(t, db.Close())

		// Reopening must not fail on the existing schema.
		db = sqlite.NewDB(path)
		require.NoError(t, db.Open())
		require.NoError(t, db.Close())
	})

	t.Run("returns error for invalid path", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB("/nonexistent/path/db.sqlite")
		require.Error(t, db.Open())
	})
}

func TestDB_Schema(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)

	schema, err := db.Schema(context.Background())
	require.NoError(t, err)

	assert.Contains(t, schema, "CREATE TABLE")
	assert.Contains(t, schema, "scraped_data")
	assert.Contains(t, schema, "scraped_at")
}
