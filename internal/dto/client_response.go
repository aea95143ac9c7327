// File: internal/dto/client_response.go
package dto

import "time"

// swagger:model dto.ClientResponse
type ClientResponse struct {
	ClientID    string    `json:"client_id" example:"c1"`
	RedirectURI string    `json:"redirect_uri" example:"https://app.example/cb"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
