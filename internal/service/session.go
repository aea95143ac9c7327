// File: internal/service/session.go
package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"hub-oauth/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// SessionCookieName carries the hub session token in browser flows.
const SessionCookieName = "hub_session"

// SessionClaims is the JWT payload of a hub session token.
type SessionClaims struct {
	UserID  int  `json:"uid"`
	IsAdmin bool `json:"is_admin"`
	jwt.RegisteredClaims
}

var (
	timeNow         = time.Now
	parseWithClaims = jwt.ParseWithClaims
)

// AuthenticateUser checks a plaintext password against the user's stored hash.
func AuthenticateUser(ctx context.Context, user model.User, password string) error {
	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return errors.New("invalid password")
	}
	return nil
}

// IssueSessionToken signs a hub session JWT for the user.
func IssueSessionToken(user model.User, ttl time.Duration) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", fmt.Errorf("JWT_SECRET not set")
	}

	now := timeNow()
	claims := SessionClaims{
		UserID:  user.ID,
		IsAdmin: user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifySessionToken parses and validates a hub session JWT.
func VerifySessionToken(tokenString string) (*SessionClaims, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET not set")
	}

	token, err := parseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
