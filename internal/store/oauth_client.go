// File: internal/store/oauth_client.go
package store

import (
	"context"
	"errors"
	"fmt"

	"hub-oauth/internal/database"
	"hub-oauth/internal/model"

	"github.com/jackc/pgx/v5"
)

// GetOAuthClientByClientID retrieves a registered client. The returned Secret
// is the stored bcrypt digest, never a plaintext.
func GetOAuthClientByClientID(ctx context.Context, db database.DB, clientID string) (*model.OAuthClient, error) {
	c := &model.OAuthClient{}
	row := db.QueryRow(ctx,
		`SELECT id, client_id, secret, redirect_uri, created_at, updated_at
		 FROM oauth_clients WHERE client_id = $1`,
		clientID,
	)
	if err := row.Scan(
		&c.ID,
		&c.ClientID,
		&c.Secret,
		&c.RedirectURI,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("GetOAuthClientByClientID: %w", err)
	}
	return c, nil
}

// AddOAuthClient registers a client, replacing any prior registration with
// the same client_id: delete then insert in one transaction, so the last
// registration wins. The secret is hashed before it touches the database.
func AddOAuthClient(ctx context.Context, db database.DB, clientID, clientSecret, redirectURI string) (*model.OAuthClient, error) {
	hashed, err := model.HashSecret(clientSecret)
	if err != nil {
		return nil, fmt.Errorf("AddOAuthClient: %w", err)
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("AddOAuthClient: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM oauth_clients WHERE client_id = $1`, clientID); err != nil {
		return nil, fmt.Errorf("AddOAuthClient: %w", err)
	}

	c := &model.OAuthClient{
		ClientID:    clientID,
		Secret:      hashed,
		RedirectURI: redirectURI,
	}
	row := tx.QueryRow(ctx,
		`INSERT INTO oauth_clients (client_id, secret, redirect_uri)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		c.ClientID,
		string(c.Secret),
		c.RedirectURI,
	)
	if err := row.Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, fmt.Errorf("AddOAuthClient: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("AddOAuthClient: %w", err)
	}
	return c, nil
}

// DeleteOAuthClient removes a registration. Deleting an unknown client_id is
// a no-op.
func DeleteOAuthClient(ctx context.Context, db database.DB, clientID string) error {
	if _, err := db.Exec(ctx, `DELETE FROM oauth_clients WHERE client_id = $1`, clientID); err != nil {
		return fmt.Errorf("DeleteOAuthClient: %w", err)
	}
	return nil
}

func ListOAuthClients(ctx context.Context, db database.DB) ([]model.OAuthClient, error) {
	rows, err := db.Query(ctx,
		`SELECT id, client_id, secret, redirect_uri, created_at, updated_at
		 FROM oauth_clients ORDER BY client_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListOAuthClients: %w", err)
	}
	defer rows.Close()

	var list []model.OAuthClient
	for rows.Next() {
		var c model.OAuthClient
		if err := rows.Scan(
			&c.ID,
			&c.ClientID,
			&c.Secret,
			&c.RedirectURI,
			&c.CreatedAt,
			&c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListOAuthClients: %w", err)
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListOAuthClients: %w", err)
	}
	return list, nil
}
