// File: internal/service/generator.go
package service

import "github.com/google/uuid"

// TokenGenerator produces the opaque identifiers used for authorization
// codes, access tokens and refresh tokens. Values must be unpredictable;
// collision resistance is what makes code uniqueness safe without a
// pre-insert check.
type TokenGenerator interface {
	Generate() string
}

// UUID4 is the default generator: random version-4 UUIDs.
type UUID4 struct{}

func (UUID4) Generate() string {
	return uuid.NewString()
}
