// File: internal/dto/login_request.go
package dto

// swagger:model dto.LoginRequest
type LoginRequest struct {
	Username string `form:"username" validate:"required" example:"alice"`
	Password string `form:"password" validate:"required" example:"Secret123!"`
	// Next is the URL to return to after login, set when the authorize
	// endpoint bounced the user here.
	Next string `form:"next" query:"next" example:"/api/oauth/authorize?..."`
}
