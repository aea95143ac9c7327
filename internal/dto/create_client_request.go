// File: internal/dto/create_client_request.go
package dto

// swagger:model dto.CreateClientRequest
type CreateClientRequest struct {
	ClientID     string `form:"client_id" validate:"required" example:"c1"`
	ClientSecret string `form:"client_secret" validate:"required" example:"secret1"`
	RedirectURI  string `form:"redirect_uri" validate:"required,uri" example:"https://app.example/cb"`
}
