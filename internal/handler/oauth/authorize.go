// File: internal/handler/oauth/authorize.go
package oauth

import (
	"errors"
	"net/http"

	"hub-oauth/internal/dto"
	"hub-oauth/internal/provider"
	"hub-oauth/internal/store"

	"github.com/labstack/echo/v4"
)

// Overridable in tests.
var (
	validateClient = (*provider.Provider).ValidateClient
	issueCode      = (*provider.Provider).IssueCode
)

// AuthorizeHandler initiates the authorization-code grant.
// @Summary     OAuth2 authorize endpoint
// @Description Validates the client, authenticates the hub user (redirecting to login when no session is present) and redirects back to the client with a fresh single-use code. Client and redirect URI failures are answered directly; redirecting to an unvalidated URI is never done.
// @Tags        oauth
// @Produce     json
// @Param       response_type query string true  "Must be code"
// @Param       client_id     query string true  "Client identifier"
// @Param       redirect_uri  query string false "Must match the registration when present"
// @Param       state         query string false "Opaque value echoed back to the client"
// @Success     302 "Redirect to the client redirect_uri with code (or to login)"
// @Failure     400 {object} dto.OAuthError
// @Failure     500 {object} dto.OAuthError
// @Router      /oauth/authorize [get]
func AuthorizeHandler(p *provider.Provider) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		var req dto.AuthorizeRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.OAuthError{Error: "invalid_request"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.OAuthError{Error: "invalid_request", Description: err.Error()})
		}

		client, err := validateClient(p, ctx, req.ClientID, req.RedirectURI)
		switch {
		case errors.Is(err, store.ErrClientNotFound):
			return c.JSON(http.StatusBadRequest, dto.OAuthError{Error: "invalid_client"})
		case errors.Is(err, provider.ErrRedirectURIMismatch):
			return c.JSON(http.StatusBadRequest, dto.OAuthError{Error: "invalid_request", Description: "redirect_uri does not match registration"})
		case err != nil:
			return c.JSON(http.StatusInternalServerError, dto.OAuthError{Error: "server_error"})
		}

		if p.Site.UserHasDeniedAccess(c) {
			return c.Redirect(http.StatusFound, client.RedirectURI+"?error=access_denied")
		}

		userID, err := p.Site.Authenticate(c)
		if err != nil {
			// Not a rejection: the user logs in and the flow re-enters here.
			return c.Redirect(http.StatusFound, p.Site.LoginRedirectURL(c))
		}

		redirect, err := issueCode(p, ctx, client, req.State, userID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.OAuthError{Error: "server_error"})
		}
		return c.Redirect(http.StatusFound, redirect)
	}
}
