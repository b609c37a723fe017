package middleware

import (
	"resume-match/internal/delivery/http/response"

	"github.com/gofiber/fiber/v3"
	"golang.org/x/time/rate"
)

// RateLimitMiddleware guards expensive endpoints with a shared token bucket.
type RateLimitMiddleware struct {
	limiter *rate.Limiter
}

// NewRateLimitMiddleware returns nil when rps <= 0, which disables limiting.
func NewRateLimitMiddleware(rps float64, burst int) *RateLimitMiddleware {
	if rps <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = 1
	}
	return &RateLimitMiddleware{limiter: rate.NewLimiter(rate.Limit(rps), burst)}
}

func (m *RateLimitMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		if m == nil || m.limiter == nil {
			return c.Next()
		}
		if !m.limiter.Allow() {
			return NewAppError(fiber.StatusTooManyRequests, response.MessageTooManyRequests, nil, nil)
		}
		return c.Next()
	}
}
