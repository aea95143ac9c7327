// File: internal/model/hashed_secret.go
package model

import "golang.org/x/crypto/bcrypt"

// HashedSecret wraps a bcrypt digest of a client secret so a candidate
// plaintext can be checked without the plaintext ever being stored or
// re-derived.
type HashedSecret string

// HashSecret derives a HashedSecret from a plaintext client secret.
func HashSecret(plaintext string) (HashedSecret, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return HashedSecret(digest), nil
}

// Matches reports whether candidate hashes to the stored digest. bcrypt's
// comparison does not leak the mismatch position, and a malformed digest
// reports false rather than an error.
func (h HashedSecret) Matches(candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(h), []byte(candidate)) == nil
}
