// File: internal/middleware/ratelimit.go
package middleware

import (
	"net/http"
	"time"

	"hub-oauth/internal/cache"
	"hub-oauth/internal/dto"

	"github.com/labstack/echo/v4"
)

// RateLimit is a fixed-window limiter over redis, keyed by route and client
// IP: at most limit requests per window. A limiter outage must not take the
// protocol endpoints down, so redis errors fall through to the handler.
func RateLimit(rdb cache.Cache, limit int, window time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := "ratelimit:" + c.Path() + ":" + c.RealIP()

			n, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				return next(c)
			}
			if n == 1 {
				rdb.Expire(ctx, key, window)
			}
			if n > int64(limit) {
				return c.JSON(http.StatusTooManyRequests, dto.HTTPError{Message: "rate limit exceeded"})
			}
			return next(c)
		}
	}
}
