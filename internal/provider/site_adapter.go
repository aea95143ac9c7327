// File: internal/provider/site_adapter.go
package provider

import (
	"net/url"
	"strings"

	"hub-oauth/internal/service"

	"github.com/labstack/echo/v4"
)

// SiteAdapter bridges the grant machinery to the hub's own authentication.
// The grant code never inspects sessions directly; it only asks the adapter
// who the current user is.
type SiteAdapter interface {
	// Authenticate resolves the current hub user for the request, or
	// ErrUserNotAuthenticated when no session is present.
	Authenticate(c echo.Context) (int, error)
	// LoginRedirectURL is where an unauthenticated user is sent. After login
	// the flow re-enters the original authorize request via next=.
	LoginRedirectURL(c echo.Context) string
	// UserHasDeniedAccess reports whether the user rejected the grant.
	UserHasDeniedAccess(c echo.Context) bool
}

// HubSiteAdapter authenticates against the hub session token, from the
// session cookie in browser flows or a bearer header otherwise. There is no
// consent screen: a user who is logged in has consented.
type HubSiteAdapter struct {
	LoginURL string
}

func (a *HubSiteAdapter) Authenticate(c echo.Context) (int, error) {
	token := sessionToken(c)
	if token == "" {
		return 0, ErrUserNotAuthenticated
	}
	claims, err := service.VerifySessionToken(token)
	if err != nil {
		return 0, ErrUserNotAuthenticated
	}
	return claims.UserID, nil
}

func (a *HubSiteAdapter) LoginRedirectURL(c echo.Context) string {
	return a.LoginURL + "?next=" + url.QueryEscape(c.Request().URL.RequestURI())
}

func (a *HubSiteAdapter) UserHasDeniedAccess(c echo.Context) bool {
	// Denial is not a supported path in this deployment.
	return false
}

func sessionToken(c echo.Context) string {
	if cookie, err := c.Cookie(service.SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	auth := c.Request().Header.Get("Authorization")
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	return ""
}
