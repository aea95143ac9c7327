// File: internal/store/auth_code.go
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hub-oauth/internal/database"
	"hub-oauth/internal/model"

	"github.com/jackc/pgx/v5"
)

var timeNow = time.Now

// SaveAuthCode persists a fresh authorization code. Uniqueness rests on the
// generator's entropy; a primary-key collision surfaces as an error.
func SaveAuthCode(ctx context.Context, db database.DB, code *model.OAuthCode) error {
	row := db.QueryRow(ctx,
		`INSERT INTO oauth_codes (code, client_id, user_id, redirect_uri, expires_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`,
		code.Code,
		code.ClientID,
		code.UserID,
		code.RedirectURI,
		code.ExpiresAt,
	)
	if err := row.Scan(&code.CreatedAt); err != nil {
		return fmt.Errorf("SaveAuthCode: %w", err)
	}
	return nil
}

// FetchAuthCode looks a code up without consuming it and without checking
// expiry; exchange paths must use ConsumeAuthCode instead.
func FetchAuthCode(ctx context.Context, db database.DB, code string) (*model.OAuthCode, error) {
	c := &model.OAuthCode{Code: code}
	row := db.QueryRow(ctx,
		`SELECT client_id, user_id, redirect_uri, expires_at, created_at
		 FROM oauth_codes WHERE code = $1`,
		code,
	)
	if err := row.Scan(
		&c.ClientID,
		&c.UserID,
		&c.RedirectURI,
		&c.ExpiresAt,
		&c.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCodeNotFound
		}
		return nil, fmt.Errorf("FetchAuthCode: %w", err)
	}
	return c, nil
}

// ConsumeAuthCode atomically fetches and deletes a code. The single DELETE ..
// RETURNING guarantees that of two concurrent exchanges exactly one gets the
// row; the other sees ErrCodeNotFound. Expired codes are also reported as
// ErrCodeNotFound: the row is gone either way and must never exchange.
func ConsumeAuthCode(ctx context.Context, db database.DB, code string) (*model.OAuthCode, error) {
	c := &model.OAuthCode{Code: code}
	row := db.QueryRow(ctx,
		`DELETE FROM oauth_codes WHERE code = $1
		 RETURNING client_id, user_id, redirect_uri, expires_at, created_at`,
		code,
	)
	if err := row.Scan(
		&c.ClientID,
		&c.UserID,
		&c.RedirectURI,
		&c.ExpiresAt,
		&c.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCodeNotFound
		}
		return nil, fmt.Errorf("ConsumeAuthCode: %w", err)
	}
	if timeNow().After(c.ExpiresAt) {
		return nil, ErrCodeNotFound
	}
	return c, nil
}

// DeleteAuthCode removes a code. Deleting a nonexistent code is a no-op.
func DeleteAuthCode(ctx context.Context, db database.DB, code string) error {
	if _, err := db.Exec(ctx, `DELETE FROM oauth_codes WHERE code = $1`, code); err != nil {
		return fmt.Errorf("DeleteAuthCode: %w", err)
	}
	return nil
}

// PurgeExpiredAuthCodes removes codes whose expiry has passed and reports how
// many were dropped.
func PurgeExpiredAuthCodes(ctx context.Context, db database.DB) (int64, error) {
	tag, err := db.Exec(ctx, `DELETE FROM oauth_codes WHERE expires_at < now()`)
	if err != nil {
		return 0, fmt.Errorf("PurgeExpiredAuthCodes: %w", err)
	}
	return tag.RowsAffected(), nil
}
