// File: internal/handler/auth/login.go
package auth

import (
	"net/http"
	"time"

	"hub-oauth/internal/database"
	"hub-oauth/internal/dto"
	"hub-oauth/internal/service"
	"hub-oauth/internal/store"

	"github.com/labstack/echo/v4"
)

const sessionTTL = 24 * time.Hour

// Overridable in tests.
var (
	getUserByName     = store.GetUserByName
	authenticateUser  = service.AuthenticateUser
	issueSessionToken = service.IssueSessionToken
)

// LoginHandler authenticates a hub user and establishes a session.
// @Summary     Log in to the hub
// @Description Verifies username/password, sets the session cookie and returns the session token. When next= is present (the authorize endpoint bounced the user here) the response is a redirect back into the original request.
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       username formData string true  "Username"
// @Param       password formData string true  "Password"
// @Param       next     formData string false "URL to return to after login"
// @Success     200 {object} dto.LoginResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /auth/login [post]
func LoginHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		user, err := getUserByName(c.Request().Context(), db, req.Username)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "invalid credentials"})
		}
		if err := authenticateUser(c.Request().Context(), *user, req.Password); err != nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "invalid credentials"})
		}

		token, err := issueSessionToken(*user, sessionTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to issue token"})
		}

		c.SetCookie(&http.Cookie{
			Name:     service.SessionCookieName,
			Value:    token,
			Path:     "/",
			HttpOnly: true,
			Expires:  time.Now().Add(sessionTTL),
		})

		// Bounce back into the flow that sent the user here.
		if req.Next != "" && req.Next[0] == '/' {
			return c.Redirect(http.StatusFound, req.Next)
		}
		return c.JSON(http.StatusOK, dto.LoginResponse{AccessToken: token})
	}
}
