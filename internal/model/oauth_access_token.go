// File: internal/model/oauth_access_token.go
package model

import "time"

// OAuthAccessToken is an issued bearer credential. Tokens are written once
// and never updated; revocation sets RevokedAt.
type OAuthAccessToken struct {
	ID               int        `db:"id" json:"-"`
	Token            string     `db:"token" json:"-"`
	ClientID         string     `db:"client_id" json:"client_id"`
	UserID           int        `db:"user_id" json:"user_id"`
	GrantType        string     `db:"grant_type" json:"grant_type"`
	ExpiresAt        time.Time  `db:"expires_at" json:"expires_at"`
	RefreshToken     *string    `db:"refresh_token" json:"-"`
	RefreshExpiresAt *time.Time `db:"refresh_expires_at" json:"refresh_expires_at,omitempty"`
	RevokedAt        *time.Time `db:"revoked_at" json:"revoked_at,omitempty"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
}
