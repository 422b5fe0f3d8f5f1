package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/guestportal/internal/pkg/constants"
	"github.com/piresc/guestportal/internal/pkg/counter"
	"github.com/piresc/guestportal/internal/pkg/logger"
	"github.com/piresc/guestportal/internal/utils"
)

// RateLimiterConfig contains configuration for the rate limiter
type RateLimiterConfig struct {
	Store    counter.Store
	Resource string
	Limit    int
	Period   time.Duration
	Now      func() time.Time
}

// RateLimiterMiddleware limits requests per client IP in fixed windows of
// Period. Counter failures let the request through.
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	if config.Now == nil {
		config.Now = time.Now
	}
	if config.Period <= 0 {
		config.Period = time.Minute
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if config.Limit <= 0 {
				return next(c)
			}

			now := config.Now()
			window := now.UnixNano() / int64(config.Period)
			resetAt := time.Unix(0, (window+1)*int64(config.Period))
			key := counter.Key(constants.KeyRateLimit, config.Resource, c.RealIP(), window)

			count, err := config.Store.Increment(c.Request().Context(), key, config.Period)
			if err != nil {
				logger.WarnCtx(c.Request().Context(), "Rate limiter unavailable, allowing request",
					logger.String("resource", config.Resource),
					logger.Err(err))
				return next(c)
			}

			h := c.Response().Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(resetAt.Unix(), 10))

			if count > int64(config.Limit) {
				h.Set("X-RateLimit-Remaining", "0")
				retry := int64(resetAt.Sub(now).Seconds())
				if retry < 1 {
					retry = 1
				}
				h.Set("Retry-After", strconv.FormatInt(retry, 10))
				return utils.PortalErrorResponse(c, http.StatusTooManyRequests, "rate_limited")
			}

			h.Set("X-RateLimit-Remaining", strconv.FormatInt(int64(config.Limit)-count, 10))
			return next(c)
		}
	}
}

// IPRateLimiter limits a resource per client IP
func IPRateLimiter(store counter.Store, resource string, limit int, period time.Duration) echo.MiddlewareFunc {
	return RateLimiterMiddleware(RateLimiterConfig{
		Store:    store,
		Resource: resource,
		Limit:    limit,
		Period:   period,
	})
}
