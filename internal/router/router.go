// File: internal/router/router.go
package router

import (
	"time"

	"github.com/labstack/echo/v4"

	"hub-oauth/internal/cache"
	"hub-oauth/internal/database"
	"hub-oauth/internal/handler"
	"hub-oauth/internal/handler/auth"
	"hub-oauth/internal/handler/oauth"
	"hub-oauth/internal/handler/users"
	"hub-oauth/internal/middleware"
	"hub-oauth/internal/provider"
)

// Config carries the construction surface of the protocol endpoints.
type Config struct {
	// Prefix is the base path of the two protocol endpoints.
	Prefix string
	// LoginURL is where unauthenticated authorize requests are redirected.
	LoginURL string
}

// Setup registers all routes and wires the provider.
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, cfg Config) {
	if cfg.Prefix == "" {
		cfg.Prefix = "/api/oauth"
	}
	if cfg.LoginURL == "" {
		cfg.LoginURL = "/api/auth/login"
	}

	site := &provider.HubSiteAdapter{LoginURL: cfg.LoginURL}
	p := provider.New(db, site)

	api := e.Group("/api")

	api.GET("/ping", handler.PingHandler(db, rdb), middleware.RequireAuth)
	api.POST("/auth/login", auth.LoginHandler(db))

	// The protocol endpoints are rate limited per client IP.
	limited := middleware.RateLimit(rdb, 30, time.Minute)
	grant := e.Group(cfg.Prefix, limited)
	grant.GET("/authorize", oauth.AuthorizeHandler(p))
	grant.POST("/authorize", oauth.AuthorizeHandler(p))
	grant.POST("/token", oauth.TokenHandler(p))

	apiClients := api.Group("/oauth/clients", middleware.RequireAdmin)
	apiClients.POST("", oauth.RegisterClientHandler(db))
	apiClients.GET("", oauth.ListClientsHandler(db))
	apiClients.DELETE("/:client_id", oauth.DeleteClientHandler(db))

	apiUsers := api.Group("/users", middleware.RequireAdmin)
	apiUsers.POST("", users.CreateUserHandler(db))

	apiUsersMe := api.Group("/users/me", middleware.RequireAuth)
	apiUsersMe.GET("", users.GetMeHandler(db))
}
