// File: internal/dto/token_request.go
package dto

// swagger:model dto.TokenRequest
type TokenRequest struct {
	GrantType   string `form:"grant_type" validate:"required" example:"authorization_code"`
	Code        string `form:"code" example:"..."`
	RedirectURI string `form:"redirect_uri" example:"https://app.example/cb"`
	// Client credentials come from Basic auth, or from the form as a
	// fallback.
	ClientID     string `form:"client_id" swaggerignore:"true"`
	ClientSecret string `form:"client_secret" swaggerignore:"true"`
}
