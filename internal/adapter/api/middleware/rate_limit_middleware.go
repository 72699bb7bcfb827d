package middleware

import (
	"github.com/labstack/echo/v4"

	"rebuy/internal/infrastructure/ratelimit"
	"rebuy/pkg/errors"
	"rebuy/pkg/response"
)

type RateLimitMiddleware struct {
	limiter *ratelimit.RateLimiter
}

func NewRateLimitMiddleware(limiter *ratelimit.RateLimiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
	}
}

// Limit throttles an action per client IP.
func (m *RateLimitMiddleware) Limit(action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			allowed, _ := m.limiter.Allow(c.RealIP(), action)
			if !allowed {
				return response.Error(c, errors.TooManyRequests("Too many attempts, slow down"))
			}
			return next(c)
		}
	}
}
