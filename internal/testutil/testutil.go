// Package testutil provisions throwaway SQLite databases for package tests.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Rana718/bookstock/internal/database"
	"github.com/Rana718/bookstock/internal/schema"
	"github.com/stretchr/testify/require"
)

// SQLiteURL returns a connection string for a fresh database file in a
// per-test temp directory.
func SQLiteURL(t *testing.T) string {
	t.Helper()
	return "sqlite://" + filepath.Join(t.TempDir(), "books_shop.db")
}

// OpenSQLite connects to an empty SQLite database that is closed on cleanup.
func OpenSQLite(t *testing.T) database.DatabaseAdapter {
	t.Helper()

	adapter, err := database.NewAdapter("sqlite", database.Options{})
	require.NoError(t, err)
	require.NoError(t, adapter.Connect(context.Background(), SQLiteURL(t)))
	t.Cleanup(func() { _ = adapter.Close() })

	require.NoError(t, adapter.Ping(context.Background()))
	return adapter
}

// OpenBookstore is OpenSQLite with the bookstore tables already created.
func OpenBookstore(t *testing.T) database.DatabaseAdapter {
	t.Helper()

	adapter := OpenSQLite(t)
	_, err := schema.NewSchemaManager(adapter).EnsureTables(context.Background())
	require.NoError(t, err)
	return adapter
}

// RowCount fails the test if the table cannot be counted.
func RowCount(t *testing.T, adapter database.DatabaseAdapter, table string) int {
	t.Helper()

	n, err := adapter.GetTableRowCount(context.Background(), table)
	require.NoError(t, err)
	return n
}
