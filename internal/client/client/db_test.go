package client

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitDatabase_CreatesCredentialsTable(t *testing.T) {
	ctx := context.Background()
	db, err := InitDatabase(ctx, ":memory:")
	require.NoError(t, err)
	defer db.Close()

	var name string
	err = db.QueryRowContext(ctx, `SELECT name FROM sqlite_master WHERE type='table' AND name='credentials'`).Scan(&name)
	require.NoError(t, err)
	require.Equal(t, "credentials", name)
}

func TestInitDatabase_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "bookhub.db")

	db, err := InitDatabase(ctx, path)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = InitDatabase(ctx, path)
	require.NoError(t, err)
	require.NoError(t, db.Close())
}
