// File: internal/dto/http_error.go
package dto

// HTTPError is the generic error body for non-protocol endpoints.
// swagger:model dto.HTTPError
type HTTPError struct {
	Message string `json:"message"`
}
