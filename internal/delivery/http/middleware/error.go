package middleware

import (
	"errors"

	"resume-match/internal/delivery/http/response"
	"resume-match/internal/pkg/logging"

	"github.com/gofiber/fiber/v3"
)

type AppError struct {
	StatusCode int
	Message    string
	Data       any
	Cause      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, message string, data any, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Data: data, Cause: cause}
}

type ErrorMiddleware struct {
	logger *logging.Logger
}

func NewErrorMiddleware(logger *logging.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logging.OrNop(logger)}
}

// Middleware renders handler errors as the response envelope. Server-side
// failures never leak their cause to the client.
func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				m.logger.Error("panic recovered", "path", c.Path(), "panic", r)
				err = response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, msg, data := normalizeError(err)
		if status >= 500 {
			m.logger.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err)
		}
		return response.Error(c, status, msg, data)
	}
}

func normalizeError(err error) (int, string, any) {
	status, msg, data := fiber.StatusInternalServerError, "", any(nil)

	var appErr *AppError
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &appErr):
		status, msg, data = appErr.StatusCode, appErr.Message, appErr.Data
	case errors.As(err, &fiberErr):
		status, msg = fiberErr.Code, fiberErr.Message
	}

	switch {
	case status == fiber.StatusServiceUnavailable:
		return status, response.MessageServiceUnavailable, nil
	case status <= 0 || status >= 500:
		return fiber.StatusInternalServerError, response.MessageInternalServerError, nil
	}
	if msg == "" {
		msg = response.DefaultMessage(status)
	}
	return status, msg, data
}
