package handler

import (
	"errors"
	"io"
	"strconv"

	"resume-match/internal/delivery/http/middleware"
	"resume-match/internal/delivery/http/response"
	"resume-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const maxUploadBytes = 10 << 20

func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, response.MessageNotFound, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func badRequest(err error) error {
	return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
}

func parseQueryIntStrict(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	return strconv.Atoi(s)
}

func parseIDParam(c fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, badRequest(err)
	}
	return id, nil
}

// readUpload returns the named multipart file, bounded by maxUploadBytes.
func readUpload(c fiber.Ctx, field string) (string, []byte, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return "", nil, badRequest(err)
	}
	if fh.Size > maxUploadBytes {
		return "", nil, middleware.NewAppError(fiber.StatusRequestEntityTooLarge, "file too large", nil, nil)
	}
	f, err := fh.Open()
	if err != nil {
		return "", nil, badRequest(err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
	if err != nil {
		return "", nil, badRequest(err)
	}
	return fh.Filename, data, nil
}
