package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/guestportal/internal/pkg/logger"
	"github.com/piresc/guestportal/internal/utils"
)

// PanicRecoveryMiddleware turns a handler panic into a logged 500
func PanicRecoveryMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}

				panicErr, ok := r.(error)
				if !ok {
					panicErr = fmt.Errorf("%v", r)
				}

				if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
					txn.NoticeError(panicErr)
				}
				logger.ErrorCtx(c.Request().Context(), "Panic recovered",
					logger.Err(panicErr),
					logger.String("method", c.Request().Method),
					logger.String("path", c.Request().URL.Path),
					logger.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
					logger.String("stack", string(debug.Stack())))

				if !c.Response().Committed {
					err = utils.InternalServerErrorResponse(c, "")
				}
			}()
			return next(c)
		}
	}
}
