package app

import (
	"context"
	"fmt"
	"strings"

	"resume-match/internal/config"
	"resume-match/internal/delivery/http/handler"
	"resume-match/internal/delivery/http/middleware"
	"resume-match/internal/delivery/http/routes"
	"resume-match/internal/pkg/logging"
	"resume-match/internal/ws"

	"github.com/gofiber/fiber/v3"
)

const maxBodyBytes = 12 << 20

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName:   c.Config.App.AppName,
		BodyLimit: maxBodyBytes,
	})

	registerGlobalMiddleware(f, c.Logger)

	reg := &routes.Registry{
		Health:       handler.NewHealthHandler(c.DB, c.Cache),
		Resumes:      handler.NewResumeHandler(c.Resumes),
		Jobs:         handler.NewJobHandler(c.Jobs),
		Match:        handler.NewMatchHandler(c.Matching),
		Applications: handler.NewApplicationHandler(c.Tracker),
		Events:       ws.NewHandler(c.Hub, c.Logger.With("component", "ws")),
	}
	if rl := middleware.NewRateLimitMiddleware(c.Config.App.RateLimitRPS, c.Config.App.RateLimitBurst); rl != nil {
		reg.Limiter = rl.Middleware()
	}
	reg.Register(f)

	return &App{Fiber: f, Container: c}
}

// Bootstrap builds the container and HTTP app and starts the event hub.
// The returned cleanup stops the hub and releases storage.
func Bootstrap(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, func() error, error) {
	c, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	hubCtx, stopHub := context.WithCancel(ctx)
	go c.Hub.Run(hubCtx)

	cleanup := func() error {
		stopHub()
		return c.Close()
	}
	return New(c), cleanup, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *logging.Logger) {
	if app == nil {
		return
	}

	accessMw := middleware.NewAccessLogMiddleware(logger.With("component", "http"))
	errMw := middleware.NewErrorMiddleware(logger.With("component", "http"))
	app.Use(accessMw.Middleware())
	app.Use(errMw.Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
