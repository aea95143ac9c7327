// File: internal/model/oauth_client.go
package model

import "time"

// OAuthClient is a registered client application. Secret is the bcrypt
// digest of the client secret; the plaintext is never stored or returned.
type OAuthClient struct {
	ID          int          `db:"id" json:"-"`
	ClientID    string       `db:"client_id" json:"client_id"`
	Secret      HashedSecret `db:"secret" json:"-"`
	RedirectURI string       `db:"redirect_uri" json:"redirect_uri"`
	CreatedAt   time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time    `db:"updated_at" json:"updated_at"`
}
