package app

import (
	"fmt"
	"strings"

	"staff-flow/internal/config"
	"staff-flow/internal/delivery/http/middleware"
	"staff-flow/internal/delivery/http/routes"
	"staff-flow/internal/pkg/response"
	"staff-flow/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	registerGlobalMiddleware(f, c)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

// Bootstrap builds the container, starts the change-feed hub, and returns the
// ready-to-listen app with its cleanup function.
func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	go c.Hub.Run()

	app := New(c)
	return app, c.Close, nil
}

func registerGlobalMiddleware(f *fiber.App, c *Container) {
	if f == nil {
		return
	}

	f.Use(middleware.NewErrorMiddleware().Middleware())
	f.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
	if c.Config.Workflow.SimLatencyMS > 0 {
		f.Use(middleware.NewSimulateLatencyMiddleware(c.Config.Workflow.SimLatencyMS).Middleware())
	}
}

func registerRoutes(f *fiber.App, c *Container) {
	if f == nil {
		return
	}

	f.Get("/health", func(ctx fiber.Ctx) error {
		return response.Success(ctx, fiber.StatusOK, response.MessageOK, nil)
	})

	routes.Register(f, routes.Deps{
		Store:      c.Store,
		Workflow:   c.Workflow,
		Projection: c.Projection,
		Notify:     c.Notify,
		WS:         ws.NewHandler(c.Hub, c.Logger),
	})
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
