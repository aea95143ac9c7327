// File: internal/dto/oauth_error.go
package dto

// OAuthError is the RFC 6749 error body returned by the protocol endpoints.
// swagger:model dto.OAuthError
type OAuthError struct {
	Error       string `json:"error" example:"invalid_grant"`
	Description string `json:"error_description,omitempty" example:"authorization code not found"`
}
