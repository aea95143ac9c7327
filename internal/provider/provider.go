// File: internal/provider/provider.go

// Package provider implements the OAuth2 authorization-code grant on top of
// the stores: authorize validates the client and persists a single-use code,
// token authenticates the client and trades the code for an access token.
package provider

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"hub-oauth/internal/database"
	"hub-oauth/internal/model"
	"hub-oauth/internal/service"
	"hub-oauth/internal/store"
)

// GrantTypeAuthorizationCode is the only grant this provider implements.
const GrantTypeAuthorizationCode = "authorization_code"

// Overridable in tests.
var (
	getOAuthClientByClientID = store.GetOAuthClientByClientID
	saveAuthCode             = store.SaveAuthCode
	consumeAuthCode          = store.ConsumeAuthCode
	saveAccessToken          = store.SaveAccessToken
	timeNow                  = time.Now
)

// Provider wires the stores, the token generator and the site adapter into
// the authorization-code grant.
type Provider struct {
	DB        database.DB
	Generator service.TokenGenerator
	Site      SiteAdapter

	CodeTTL    time.Duration
	TokenTTL   time.Duration
	RefreshTTL time.Duration
}

// New builds a Provider with the default UUID4 generator and TTLs.
func New(db database.DB, site SiteAdapter) *Provider {
	return &Provider{
		DB:         db,
		Generator:  service.UUID4{},
		Site:       site,
		CodeTTL:    10 * time.Minute,
		TokenTTL:   24 * time.Hour,
		RefreshTTL: 30 * 24 * time.Hour,
	}
}

// ValidateClient resolves the requesting client and checks the redirect URI
// against its registration. An empty redirectURI falls back to the
// registered one.
func (p *Provider) ValidateClient(ctx context.Context, clientID, redirectURI string) (*model.OAuthClient, error) {
	client, err := getOAuthClientByClientID(ctx, p.DB, clientID)
	if err != nil {
		return nil, err
	}
	if redirectURI != "" && redirectURI != client.RedirectURI {
		return nil, ErrRedirectURIMismatch
	}
	return client, nil
}

// IssueCode persists a fresh single-use code for the authenticated user and
// returns the client redirect URL carrying it.
func (p *Provider) IssueCode(ctx context.Context, client *model.OAuthClient, state string, userID int) (string, error) {
	code := &model.OAuthCode{
		Code:        p.Generator.Generate(),
		ClientID:    client.ClientID,
		UserID:      userID,
		RedirectURI: client.RedirectURI,
		ExpiresAt:   timeNow().Add(p.CodeTTL),
	}
	if err := saveAuthCode(ctx, p.DB, code); err != nil {
		return "", err
	}

	u, err := url.Parse(client.RedirectURI)
	if err != nil {
		return "", fmt.Errorf("IssueCode: %w", err)
	}
	q := u.Query()
	q.Set("code", code.Code)
	if state != "" {
		q.Set("state", state)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// ExchangeCode is the token half of the grant: the client authenticates with
// its secret and trades a code for an access token. The code is consumed
// atomically before the token is issued, so a second exchange of the same
// code observes ErrCodeNotFound.
func (p *Provider) ExchangeCode(ctx context.Context, clientID, clientSecret, code, redirectURI string) (*model.OAuthAccessToken, error) {
	client, err := getOAuthClientByClientID(ctx, p.DB, clientID)
	if err != nil {
		return nil, err
	}
	if !client.Secret.Matches(clientSecret) {
		return nil, ErrInvalidClientSecret
	}

	authCode, err := consumeAuthCode(ctx, p.DB, code)
	if err != nil {
		return nil, err
	}
	if authCode.ClientID != client.ClientID {
		// A code issued to another client is indistinguishable from a miss.
		return nil, store.ErrCodeNotFound
	}
	if redirectURI != "" && redirectURI != authCode.RedirectURI {
		return nil, ErrRedirectURIMismatch
	}

	now := timeNow()
	refreshToken := p.Generator.Generate()
	refreshExpiresAt := now.Add(p.RefreshTTL)
	token := &model.OAuthAccessToken{
		Token:            p.Generator.Generate(),
		ClientID:         client.ClientID,
		UserID:           authCode.UserID,
		GrantType:        GrantTypeAuthorizationCode,
		ExpiresAt:        now.Add(p.TokenTTL),
		RefreshToken:     &refreshToken,
		RefreshExpiresAt: &refreshExpiresAt,
	}
	if err := saveAccessToken(ctx, p.DB, token); err != nil {
		return nil, err
	}
	return token, nil
}
