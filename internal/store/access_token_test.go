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

func TestAccessTokenStore(t *testing.T) {
	now := time.Now().UTC()
	refresh := "rt"
	refreshExp := now.Add(720 * time.Hour)
	sample := model.OAuthAccessToken{
		Token:            "tok",
		ClientID:         "cid",
		UserID:           1,
		GrantType:        "authorization_code",
		ExpiresAt:        now.Add(24 * time.Hour),
		RefreshToken:     &refresh,
		RefreshExpiresAt: &refreshExp,
	}

	// userCheckThenInsert builds a FakeTx whose first QueryRow answers the
	// user-existence check and second the token insert.
	userCheckThenInsert := func(userErr, insertErr error, commitErr error) (*database.FakeTx, *bool) {
		committed := new(bool)
		calls := 0
		return &database.FakeTx{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				calls++
				if calls == 1 {
					if userErr != nil {
						return errRow(userErr)
					}
					return &fakeRow{scanFn: func(dest ...any) error {
						*dest[0].(*int) = 1
						return nil
					}}
				}
				if insertErr != nil {
					return errRow(insertErr)
				}
				return &fakeRow{scanFn: func(dest ...any) error {
					*dest[0].(*int) = 5
					*dest[1].(*time.Time) = now
					return nil
				}}
			},
			CommitFn: func(context.Context) error { *committed = true; return commitErr },
		}, committed
	}

	/* SaveAccessToken */
	t.Run("Save ok", func(t *testing.T) {
		tx, committed := userCheckThenInsert(nil, nil, nil)
		p := &database.FakeDB{BeginFn: func(context.Context) (pgx.Tx, error) { return tx, nil }}
		tok := sample
		require.NoError(t, SaveAccessToken(context.Background(), p, &tok))
		require.True(t, *committed)
		require.Equal(t, 5, tok.ID)
	})

	t.Run("Save begin err", func(t *testing.T) {
		p := &database.FakeDB{BeginFn: func(context.Context) (pgx.Tx, error) { return nil, errors.New("x") }}
		tok := sample
		require.Error(t, SaveAccessToken(context.Background(), p, &tok))
	})

	t.Run("Save dangling user", func(t *testing.T) {
		tx, committed := userCheckThenInsert(pgx.ErrNoRows, nil, nil)
		var rolledBack bool
		tx.RollbackFn = func(context.Context) error { rolledBack = true; return nil }
		p := &database.FakeDB{BeginFn: func(context.Context) (pgx.Tx, error) { return tx, nil }}
		tok := sample
		err := SaveAccessToken(context.Background(), p, &tok)
		require.ErrorIs(t, err, ErrUserNotFound)
		require.False(t, *committed)
		require.True(t, rolledBack)
	})

	t.Run("Save insert err surfaces", func(t *testing.T) {
		tx, committed := userCheckThenInsert(nil, errors.New("insert fail"), nil)
		p := &database.FakeDB{BeginFn: func(context.Context) (pgx.Tx, error) { return tx, nil }}
		tok := sample
		err := SaveAccessToken(context.Background(), p, &tok)
		require.ErrorContains(t, err, "insert fail")
		require.False(t, *committed)
	})

	t.Run("Save commit err surfaces", func(t *testing.T) {
		tx, _ := userCheckThenInsert(nil, nil, errors.New("commit fail"))
		p := &database.FakeDB{BeginFn: func(context.Context) (pgx.Tx, error) { return tx, nil }}
		tok := sample
		require.ErrorContains(t, SaveAccessToken(context.Background(), p, &tok), "commit fail")
	})

	/* GetAccessToken */
	t.Run("Get ok", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanFn: func(dest ...any) error {
					*dest[0].(*int) = 5
					*dest[1].(*string) = sample.ClientID
					*dest[2].(*int) = sample.UserID
					*dest[3].(*string) = sample.GrantType
					*dest[4].(*time.Time) = sample.ExpiresAt
					*dest[5].(**string) = sample.RefreshToken
					*dest[6].(**time.Time) = sample.RefreshExpiresAt
					*dest[7].(**time.Time) = nil
					*dest[8].(*time.Time) = now
					return nil
				}}
			},
		}
		got, err := GetAccessToken(context.Background(), p, "tok")
		require.NoError(t, err)
		require.Equal(t, "cid", got.ClientID)
		require.Nil(t, got.RevokedAt)
		require.NotNil(t, got.RefreshToken)
	})

	t.Run("Get miss", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return errRow(pgx.ErrNoRows)
			},
		}
		_, err := GetAccessToken(context.Background(), p, "tok")
		require.ErrorIs(t, err, ErrTokenNotFound)
	})

	/* RevokeAccessToken */
	t.Run("Revoke ok", func(t *testing.T) {
		p := &database.FakeDB{
			ExecFn: func(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
				require.Contains(t, sql, "revoked_at")
				require.Equal(t, "tok", args[0])
				return pgconn.CommandTag{}, nil
			},
		}
		require.NoError(t, RevokeAccessToken(context.Background(), p, "tok"))
	})

	t.Run("Revoke err", func(t *testing.T) {
		p := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.CommandTag{}, errors.New("x")
			},
		}
		require.Error(t, RevokeAccessToken(context.Background(), p, "tok"))
	})

	/* PurgeExpiredAccessTokens */
	t.Run("Purge ok", func(t *testing.T) {
		p := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("DELETE 2"), nil
			},
		}
		n, err := PurgeExpiredAccessTokens(context.Background(), p)
		require.NoError(t, err)
		require.EqualValues(t, 2, n)
	})

	t.Run("Purge err", func(t *testing.T) {
		p := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.CommandTag{}, errors.New("x")
			},
		}
		_, err := PurgeExpiredAccessTokens(context.Background(), p)
		require.Error(t, err)
	})
}
