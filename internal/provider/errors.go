// File: internal/provider/errors.go
package provider

import "errors"

var (
	// ErrUserNotAuthenticated means no hub session user is present. The
	// transport layer answers it with a redirect to login, never a hard
	// failure.
	ErrUserNotAuthenticated = errors.New("user not authenticated")

	// ErrInvalidClientSecret means the presented secret does not match the
	// registered digest.
	ErrInvalidClientSecret = errors.New("invalid client secret")

	// ErrRedirectURIMismatch means the requested redirect URI does not match
	// the client's registration (or, at exchange time, the one the code was
	// issued for).
	ErrRedirectURIMismatch = errors.New("redirect URI mismatch")
)
