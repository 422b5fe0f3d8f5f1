package middleware

import (
	"crypto/subtle"

	"github.com/labstack/echo/v4"
	"github.com/piresc/guestportal/internal/utils"
)

// APIKeyHeader carries the operator key on admin routes
const APIKeyHeader = "X-API-Key"

// ValidateAPIKey rejects requests whose X-API-Key does not match key. An
// empty key disables the routes entirely.
func ValidateAPIKey(key string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if key == "" {
				return utils.ForbiddenResponse(c, "Admin API is disabled")
			}
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.UnauthorizedResponse(c, "API key is required")
			}
			if subtle.ConstantTimeCompare([]byte(apiKey), []byte(key)) != 1 {
				return utils.UnauthorizedResponse(c, "Invalid API key")
			}
			return next(c)
		}
	}
}
