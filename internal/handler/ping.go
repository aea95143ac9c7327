// File: internal/handler/ping.go
package handler

import (
	"net/http"

	"hub-oauth/internal/cache"
	"hub-oauth/internal/database"
	"hub-oauth/internal/dto"

	"github.com/labstack/echo/v4"
)

// PingResponse is the health check body.
// swagger:model PingResponse
type PingResponse struct {
	Message string `json:"message" example:"pong"`
}

// PingHandler checks database and redis connectivity.
// @Summary     Health Check
// @Tags        health
// @Produce     json
// @Success     200 {object} PingResponse
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /ping [get]
func PingHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := db.Ping(ctx); err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "database unhealthy"})
		}
		if err := rdb.Ping(ctx).Err(); err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "redis unhealthy"})
		}
		return c.JSON(http.StatusOK, PingResponse{Message: "pong"})
	}
}
