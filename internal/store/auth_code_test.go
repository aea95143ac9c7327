package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"hub-oauth/internal/database"
	"hub-oauth/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func codeRow(c *model.OAuthCode) *fakeRow {
	return &fakeRow{scanFn: func(dest ...any) error {
		*dest[0].(*string) = c.ClientID
		*dest[1].(*int) = c.UserID
		*dest[2].(*string) = c.RedirectURI
		*dest[3].(*time.Time) = c.ExpiresAt
		*dest[4].(*time.Time) = c.CreatedAt
		return nil
	}}
}

func TestAuthCodeStore(t *testing.T) {
	defer func() { timeNow = time.Now }()
	now := time.Now().UTC()
	sample := model.OAuthCode{
		Code:        "abc",
		ClientID:    "cid",
		UserID:      1,
		RedirectURI: "https://app.example/cb",
		ExpiresAt:   now.Add(10 * time.Minute),
		CreatedAt:   now,
	}

	/* SaveAuthCode */
	t.Run("Save ok", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				require.Equal(t, "abc", args[0])
				return &fakeRow{scanFn: func(dest ...any) error {
					*dest[0].(*time.Time) = now
					return nil
				}}
			},
		}
		code := sample
		require.NoError(t, SaveAuthCode(context.Background(), p, &code))
		require.Equal(t, now, code.CreatedAt)
	})

	t.Run("Save err", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return errRow(errors.New("dup"))
			},
		}
		code := sample
		require.Error(t, SaveAuthCode(context.Background(), p, &code))
	})

	/* FetchAuthCode */
	t.Run("Fetch ok", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return codeRow(&sample)
			},
		}
		got, err := FetchAuthCode(context.Background(), p, "abc")
		require.NoError(t, err)
		require.Equal(t, sample.ClientID, got.ClientID)
		require.Equal(t, "abc", got.Code)
	})

	t.Run("Fetch miss", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return errRow(pgx.ErrNoRows)
			},
		}
		_, err := FetchAuthCode(context.Background(), p, "abc")
		require.ErrorIs(t, err, ErrCodeNotFound)
	})

	/* ConsumeAuthCode */
	t.Run("Consume ok", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
				require.Contains(t, sql, "DELETE FROM oauth_codes")
				require.Equal(t, "abc", args[0])
				return codeRow(&sample)
			},
		}
		got, err := ConsumeAuthCode(context.Background(), p, "abc")
		require.NoError(t, err)
		require.Equal(t, sample.UserID, got.UserID)
	})

	t.Run("Consume miss", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return errRow(pgx.ErrNoRows)
			},
		}
		_, err := ConsumeAuthCode(context.Background(), p, "abc")
		require.ErrorIs(t, err, ErrCodeNotFound)
	})

	t.Run("Consume expired", func(t *testing.T) {
		expired := sample
		expired.ExpiresAt = now.Add(-time.Minute)
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return codeRow(&expired)
			},
		}
		_, err := ConsumeAuthCode(context.Background(), p, "abc")
		require.ErrorIs(t, err, ErrCodeNotFound)
	})

	t.Run("Consume err", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return errRow(errors.New("boom"))
			},
		}
		_, err := ConsumeAuthCode(context.Background(), p, "abc")
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrCodeNotFound)
	})

	/* DeleteAuthCode */
	t.Run("Delete ok", func(t *testing.T) {
		p := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.CommandTag{}, nil
			},
		}
		require.NoError(t, DeleteAuthCode(context.Background(), p, "abc"))
	})

	t.Run("Delete err", func(t *testing.T) {
		p := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.CommandTag{}, errors.New("x")
			},
		}
		require.Error(t, DeleteAuthCode(context.Background(), p, "abc"))
	})

	/* PurgeExpiredAuthCodes */
	t.Run("Purge ok", func(t *testing.T) {
		p := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("DELETE 3"), nil
			},
		}
		n, err := PurgeExpiredAuthCodes(context.Background(), p)
		require.NoError(t, err)
		require.EqualValues(t, 3, n)
	})

	t.Run("Purge err", func(t *testing.T) {
		p := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.CommandTag{}, errors.New("x")
			},
		}
		_, err := PurgeExpiredAuthCodes(context.Background(), p)
		require.Error(t, err)
	})
}
