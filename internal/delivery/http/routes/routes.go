package routes

import (
	"resume-match/internal/delivery/http/handler"
	"resume-match/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	Health       *handler.HealthHandler
	Resumes      *handler.ResumeHandler
	Jobs         *handler.JobHandler
	Match        *handler.MatchHandler
	Applications *handler.ApplicationHandler
	Events       *ws.Handler

	// Limiter, when set, guards the CPU-heavy parse and match routes.
	Limiter fiber.Handler
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil || r == nil {
		return
	}

	if r.Health != nil {
		r.Health.RegisterRoutes(app)
	}
	if r.Events != nil {
		app.Get("/ws", r.Events.HandleEvents)
	}

	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r)
}
