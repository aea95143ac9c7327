// File: internal/dto/login_response.go
package dto

// swagger:model dto.LoginResponse
type LoginResponse struct {
	AccessToken string `json:"access_token" example:"..."`
}
