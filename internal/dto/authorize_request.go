// File: internal/dto/authorize_request.go
package dto

// swagger:model dto.AuthorizeRequest
type AuthorizeRequest struct {
	ResponseType string `query:"response_type" form:"response_type" validate:"required,eq=code" example:"code"`
	ClientID     string `query:"client_id" form:"client_id" validate:"required" example:"c1"`
	RedirectURI  string `query:"redirect_uri" form:"redirect_uri" example:"https://app.example/cb"`
	State        string `query:"state" form:"state" example:"xyz"`
}
