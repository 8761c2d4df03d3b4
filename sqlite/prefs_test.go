package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/petdex/sqlite"
	"github.com/stretchr/testify/require"
)

func TestPrefsService_DarkMode(t *testing.T) {
	t.Parallel()

	t.Run("defaults to false when unset", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		s := sqlite.NewPrefsService(db)

		enabled, err := s.DarkMode(context.Background())
		require.NoError(t, err)
		require.False(t, enabled)
	})

	t.Run("round-trips the stored value", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		s := sqlite.NewPrefsService(db)
		ctx := context.Background()

		require.NoError(t, s.SetDarkMode(ctx, true))
		enabled, err := s.DarkMode(ctx)
		require.NoError(t, err)
		require.True(t, enabled)

		require.NoError(t, s.SetDarkMode(ctx, false))
		enabled, err = s.DarkMode(ctx)
		require.NoError(t, err)
		require.False(t, enabled)
	})

	t.Run("repeated sets keep a single row", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		s := sqlite.NewPrefsService(db)
		ctx := context.Background()

		require.NoError(t, s.SetDarkMode(ctx, true))
		require.NoError(t, s.SetDarkMode(ctx, true))
		require.NoError(t, s.SetDarkMode(ctx, false))

		var count int
		err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM prefs").Scan(&count)
		require.NoError(t, err)
		require.Equal(t, 1, count)
	})
}

// mustOpenDB opens an in-memory database and registers cleanup.
func mustOpenDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { _ = db.Close() })
	return db
}
