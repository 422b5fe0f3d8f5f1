package middleware

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/guestportal/internal/pkg/constants"
)

type requestIDKey struct{}

// RequestIDMiddleware propagates X-Request-ID, generating one when absent
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			c.Response().Header().Set(echo.HeaderXRequestID, requestID)
			c.Set(constants.CtxRequestID, requestID)

			ctx := context.WithValue(c.Request().Context(), requestIDKey{}, requestID)
			c.SetRequest(c.Request().WithContext(ctx))

			if txn := newrelic.FromContext(ctx); txn != nil {
				txn.AddAttribute("request_id", requestID)
			}
			return next(c)
		}
	}
}

// RequestIDFromContext returns the id set by RequestIDMiddleware
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
