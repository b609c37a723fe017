package middleware

import (
	"time"

	"resume-match/internal/pkg/logging"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const HeaderRequestID = "X-Request-ID"

type AccessLogMiddleware struct {
	logger *logging.Logger
}

func NewAccessLogMiddleware(logger *logging.Logger) *AccessLogMiddleware {
	return &AccessLogMiddleware{logger: logging.OrNop(logger)}
}

func (m *AccessLogMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		rid := c.Get(HeaderRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(HeaderRequestID, rid)

		err := c.Next()

		m.logger.Info("http access",
			"rid", rid,
			"ip", c.IP(),
			"method", c.Method(),
			"path", c.OriginalURL(),
			"status", c.Response().StatusCode(),
			"latency", time.Since(start),
			"req_bytes", c.Request().Header.ContentLength(),
			"resp_bytes", len(c.Response().Body()),
			"ua", c.Get("User-Agent"),
		)

		return err
	}
}
