package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/piresc/guestportal/internal/pkg/constants"
	jwtpkg "github.com/piresc/guestportal/internal/pkg/jwt"
	"github.com/piresc/guestportal/internal/pkg/models"
	"github.com/piresc/guestportal/internal/utils"
)

// GuestJWTMiddleware authenticates a guest by the bearer token returned at
// admission and stores the session and tenant ids on the context.
func GuestJWTMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateGuestToken(parts[1], config)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			c.Set(constants.CtxSessionID, claims.SessionID)
			c.Set(constants.CtxTenantID, claims.TenantID)
			return next(c)
		}
	}
}
