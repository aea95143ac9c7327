// File: internal/model/oauth_code.go
package model

import "time"

// OAuthCode is a single-use authorization code. It is deleted the moment it
// is exchanged for an access token, or becomes invalid once ExpiresAt passes.
type OAuthCode struct {
	Code        string    `db:"code" json:"-"`
	ClientID    string    `db:"client_id" json:"client_id"`
	UserID      int       `db:"user_id" json:"user_id"`
	RedirectURI string    `db:"redirect_uri" json:"redirect_uri"`
	ExpiresAt   time.Time `db:"expires_at" json:"expires_at"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
