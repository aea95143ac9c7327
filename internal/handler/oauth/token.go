// File: internal/handler/oauth/token.go
package oauth

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"hub-oauth/internal/dto"
	"hub-oauth/internal/provider"
	"hub-oauth/internal/store"

	"github.com/labstack/echo/v4"
)

// Overridable in tests.
var exchangeCode = (*provider.Provider).ExchangeCode

// TokenHandler exchanges an authorization code for an access token.
// @Summary     OAuth2 token endpoint
// @Description Authenticates the client (Basic auth or form credentials) and trades a single-use code for an access token. Rejections are structured OAuth error bodies, never an empty success.
// @Tags        oauth
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       Authorization header   string false "Basic base64(client_id:client_secret)"
// @Param       grant_type    formData string true  "Must be authorization_code"
// @Param       code          formData string true  "Authorization code"
// @Param       redirect_uri  formData string false "Must match the one the code was issued for"
// @Success     200 {object} dto.TokenResponse
// @Failure     400 {object} dto.OAuthError
// @Failure     401 {object} dto.OAuthError
// @Failure     500 {object} dto.OAuthError
// @Router      /oauth/token [post]
func TokenHandler(p *provider.Provider) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		var req dto.TokenRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.OAuthError{Error: "invalid_request"})
		}

		// Basic auth wins over form credentials.
		if auth := c.Request().Header.Get("Authorization"); auth != "" {
			const prefix = "Basic "
			if !strings.HasPrefix(auth, prefix) {
				return c.JSON(http.StatusBadRequest, dto.OAuthError{Error: "invalid_request", Description: "invalid authorization header"})
			}
			decoded, err := base64.StdEncoding.DecodeString(auth[len(prefix):])
			if err != nil {
				return c.JSON(http.StatusBadRequest, dto.OAuthError{Error: "invalid_request", Description: "invalid authorization header"})
			}
			parts := strings.SplitN(string(decoded), ":", 2)
			if len(parts) != 2 {
				return c.JSON(http.StatusBadRequest, dto.OAuthError{Error: "invalid_request", Description: "invalid authorization header"})
			}
			req.ClientID = parts[0]
			req.ClientSecret = parts[1]
		}
		if req.ClientID == "" {
			return c.JSON(http.StatusUnauthorized, dto.OAuthError{Error: "invalid_client"})
		}

		if req.GrantType != provider.GrantTypeAuthorizationCode {
			return c.JSON(http.StatusBadRequest, dto.OAuthError{Error: "unsupported_grant_type"})
		}
		if req.Code == "" {
			return c.JSON(http.StatusBadRequest, dto.OAuthError{Error: "invalid_request", Description: "code is required"})
		}

		token, err := exchangeCode(p, ctx, req.ClientID, req.ClientSecret, req.Code, req.RedirectURI)
		switch {
		case errors.Is(err, store.ErrClientNotFound), errors.Is(err, provider.ErrInvalidClientSecret):
			return c.JSON(http.StatusUnauthorized, dto.OAuthError{Error: "invalid_client"})
		case errors.Is(err, store.ErrCodeNotFound), errors.Is(err, provider.ErrRedirectURIMismatch):
			return c.JSON(http.StatusBadRequest, dto.OAuthError{Error: "invalid_grant"})
		case err != nil:
			return c.JSON(http.StatusInternalServerError, dto.OAuthError{Error: "server_error"})
		}

		resp := dto.TokenResponse{
			AccessToken: token.Token,
			TokenType:   "Bearer",
			ExpiresIn:   int(p.TokenTTL.Seconds()),
		}
		if token.RefreshToken != nil {
			resp.RefreshToken = *token.RefreshToken
		}
		return c.JSON(http.StatusOK, resp)
	}
}
