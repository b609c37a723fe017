package handler

import (
	"context"
	"time"

	"resume-match/internal/delivery/http/response"

	"github.com/gofiber/fiber/v3"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db    Pinger
	cache interface{ Available() bool }
}

func NewHealthHandler(db Pinger, cache interface{ Available() bool }) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

// Health fails only when the database is unreachable. A missing cache
// degrades to bypass and is reported, not fatal.
func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	dbStatus := "ok"
	status := fiber.StatusOK
	if h.db != nil {
		if err := h.db.Ping(ctx); err != nil {
			dbStatus = "down"
			status = fiber.StatusServiceUnavailable
		}
	}

	cacheStatus := "disabled"
	if h.cache != nil && h.cache.Available() {
		cacheStatus = "ok"
	}

	return response.Success(c, status, "", fiber.Map{"database": dbStatus, "cache": cacheStatus})
}
