package middleware

import (
	"math"
	"strconv"

	"github.com/labstack/echo/v4"

	"teamsynchub/internal/infrastructure/ratelimit"
	"teamsynchub/pkg/errors"
	"teamsynchub/pkg/logger"
	"teamsynchub/pkg/response"
)

// RateLimit limits one action per client IP.
func RateLimit(limiter *ratelimit.RateLimiter, action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()
			allowed, wait := limiter.Allow(ip, action)
			if !allowed {
				logger.Warn("RATE LIMIT: %s refused for %s (retry in %v)", action, ip, wait)
				c.Response().Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
				return response.Error(c, errors.TooManyRequests("Rate limit exceeded, try again later"))
			}
			return next(c)
		}
	}
}
