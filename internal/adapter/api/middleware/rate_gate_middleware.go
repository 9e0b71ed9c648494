package middleware

import (
	"math"

	"vehiql/internal/infrastructure/ratelimit"
	"vehiql/pkg/errors"
	"vehiql/pkg/logger"
	"vehiql/pkg/response"

	"github.com/labstack/echo/v4"
)

// RateGate admits requests through the per-identity token bucket before the
// handler runs. Identity is the request's network identity; each admitted
// request spends cost tokens.
func RateGate(limiter *ratelimit.Limiter, cost int) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := c.RealIP()

			decision := limiter.Admit(identity, cost)
			if !decision.Allowed {
				resetSeconds := int(math.Ceil(decision.RetryAfter.Seconds()))
				logger.Warn("Rate limit exceeded for %s (remaining=%d, reset=%ds)", identity, decision.Remaining, resetSeconds)
				return response.Error(c, errors.TooManyRequests(
					"Too many requests. Please try again later",
					decision.Remaining,
					resetSeconds,
				))
			}

			return next(c)
		}
	}
}
