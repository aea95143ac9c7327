package database

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestFakeDB(t *testing.T) {
	ctx := context.Background()

	t.Run("unset methods panic", func(t *testing.T) {
		f := &FakeDB{}
		require.Panics(t, func() { f.Exec(ctx, "SELECT 1") })
		require.Panics(t, func() { f.Query(ctx, "SELECT 1") })
		require.Panics(t, func() { f.QueryRow(ctx, "SELECT 1") })
		require.Panics(t, func() { f.Begin(ctx) })
		require.Panics(t, func() { f.Ping(ctx) })
	})

	t.Run("Close without fn is a no-op", func(t *testing.T) {
		(&FakeDB{}).Close()
	})

	t.Run("set fns are dispatched", func(t *testing.T) {
		var closed bool
		f := &FakeDB{
			ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("DELETE 1"), nil
			},
			PingFn:  func(context.Context) error { return nil },
			CloseFn: func() { closed = true },
		}
		tag, err := f.Exec(ctx, "DELETE FROM x")
		require.NoError(t, err)
		require.EqualValues(t, 1, tag.RowsAffected())
		require.NoError(t, f.Ping(ctx))
		f.Close()
		require.True(t, closed)
	})
}

func TestFakeTx(t *testing.T) {
	ctx := context.Background()
	f := &FakeTx{}

	// Rollback after Commit is routine in the stores, so the default is nil.
	require.NoError(t, f.Rollback(ctx))

	require.Panics(t, func() { f.Exec(ctx, "SELECT 1") })
	require.Panics(t, func() { f.Commit(ctx) })
	require.Panics(t, func() { _, _ = f.Begin(ctx) })
	require.Panics(t, func() { f.SendBatch(ctx, &pgx.Batch{}) })

	require.Nil(t, f.Conn())
	require.Equal(t, pgx.LargeObjects{}, f.LargeObjects())
}
