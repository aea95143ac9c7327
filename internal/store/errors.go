// File: internal/store/errors.go
package store

import "errors"

// Lookup misses and referential failures are sentinel errors so callers can
// branch with errors.Is; anything else wrapping out of a store is a
// persistence failure.
var (
	ErrClientNotFound = errors.New("oauth client not found")
	ErrCodeNotFound   = errors.New("authorization code not found")
	ErrTokenNotFound  = errors.New("access token not found")
	ErrUserNotFound   = errors.New("user not found")
)
