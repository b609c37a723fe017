package response

import "github.com/gofiber/fiber/v3"

// SemanticResponse is the envelope every API response is wrapped in.
type SemanticResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

type ListData struct {
	Count int `json:"count"`
	Items any `json:"items"`
}

const (
	MessageOK                  = "ok"
	MessageCreated             = "created"
	MessageBadRequest          = "bad request"
	MessageNotFound            = "not found"
	MessageUnprocessableEntity = "unprocessable entity"
	MessageTooManyRequests     = "too many requests"
	MessageServiceUnavailable  = "service unavailable"
	MessageInternalServerError = "internal server error"
	MessageError               = "error"
)

func Success(c fiber.Ctx, status int, message string, data any) error {
	return write(c, status, message, data)
}

func List(c fiber.Ctx, count int, items any) error {
	return write(c, fiber.StatusOK, MessageOK, ListData{Count: count, Items: items})
}

func Error(c fiber.Ctx, status int, message string, data any) error {
	return write(c, status, message, data)
}

func write(c fiber.Ctx, status int, message string, data any) error {
	if status < 100 || status > 599 {
		status = fiber.StatusInternalServerError
	}
	if message == "" {
		message = DefaultMessage(status)
	}
	return c.Status(status).JSON(SemanticResponse{Status: status, Message: message, Data: data})
}

func DefaultMessage(status int) string {
	switch status {
	case fiber.StatusOK:
		return MessageOK
	case fiber.StatusCreated:
		return MessageCreated
	case fiber.StatusBadRequest:
		return MessageBadRequest
	case fiber.StatusNotFound:
		return MessageNotFound
	case fiber.StatusUnprocessableEntity:
		return MessageUnprocessableEntity
	case fiber.StatusTooManyRequests:
		return MessageTooManyRequests
	case fiber.StatusServiceUnavailable:
		return MessageServiceUnavailable
	}
	if status >= 500 {
		return MessageInternalServerError
	}
	return MessageError
}
