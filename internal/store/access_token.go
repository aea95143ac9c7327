// File: internal/store/access_token.go
package store

import (
	"context"
	"errors"
	"fmt"

	"hub-oauth/internal/database"
	"hub-oauth/internal/model"

	"github.com/jackc/pgx/v5"
)

// SaveAccessToken persists an issued token inside a transaction. The owning
// user must exist: a dangling user_id aborts with ErrUserNotFound and writes
// nothing. Every failure path rolls back and returns the error to the caller.
func SaveAccessToken(ctx context.Context, db database.DB, t *model.OAuthAccessToken) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("SaveAccessToken: %w", err)
	}
	defer tx.Rollback(ctx)

	var userID int
	if err := tx.QueryRow(ctx, `SELECT id FROM users WHERE id = $1`, t.UserID).Scan(&userID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrUserNotFound
		}
		return fmt.Errorf("SaveAccessToken: %w", err)
	}

	row := tx.QueryRow(ctx,
		`INSERT INTO oauth_access_tokens
		     (token, client_id, user_id, grant_type, expires_at, refresh_token, refresh_expires_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at`,
		t.Token,
		t.ClientID,
		t.UserID,
		t.GrantType,
		t.ExpiresAt,
		t.RefreshToken,
		t.RefreshExpiresAt,
	)
	if err := row.Scan(&t.ID, &t.CreatedAt); err != nil {
		return fmt.Errorf("SaveAccessToken: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("SaveAccessToken: %w", err)
	}
	return nil
}

// GetAccessToken looks an issued token up by its opaque value.
func GetAccessToken(ctx context.Context, db database.DB, token string) (*model.OAuthAccessToken, error) {
	t := &model.OAuthAccessToken{Token: token}
	row := db.QueryRow(ctx,
		`SELECT id, client_id, user_id, grant_type, expires_at,
		        refresh_token, refresh_expires_at, revoked_at, created_at
		 FROM oauth_access_tokens WHERE token = $1`,
		token,
	)
	if err := row.Scan(
		&t.ID,
		&t.ClientID,
		&t.UserID,
		&t.GrantType,
		&t.ExpiresAt,
		&t.RefreshToken,
		&t.RefreshExpiresAt,
		&t.RevokedAt,
		&t.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTokenNotFound
		}
		return nil, fmt.Errorf("GetAccessToken: %w", err)
	}
	return t, nil
}

// RevokeAccessToken marks a token revoked. Revoking an unknown or already
// revoked token is a no-op.
func RevokeAccessToken(ctx context.Context, db database.DB, token string) error {
	_, err := db.Exec(ctx,
		`UPDATE oauth_access_tokens SET revoked_at = now()
		 WHERE token = $1 AND revoked_at IS NULL`,
		token,
	)
	if err != nil {
		return fmt.Errorf("RevokeAccessToken: %w", err)
	}
	return nil
}

// PurgeExpiredAccessTokens removes tokens whose refresh window has also
// closed; a token with an open refresh window stays until that too expires.
func PurgeExpiredAccessTokens(ctx context.Context, db database.DB) (int64, error) {
	tag, err := db.Exec(ctx,
		`DELETE FROM oauth_access_tokens
		 WHERE expires_at < now()
		   AND (refresh_expires_at IS NULL OR refresh_expires_at < now())`,
	)
	if err != nil {
		return 0, fmt.Errorf("PurgeExpiredAccessTokens: %w", err)
	}
	return tag.RowsAffected(), nil
}
