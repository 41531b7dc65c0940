package routes

import (
	"staff-flow/internal/notification"
	"staff-flow/internal/store"
	"staff-flow/internal/usecase"
	"staff-flow/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Deps carries everything the route tree needs; the app package fills it in.
type Deps struct {
	Store      *store.Store
	Workflow   usecase.WorkflowUsecase
	Projection usecase.ProjectionUsecase
	Notify     *notification.Center
	WS         *ws.Handler
}

func Register(app *fiber.App, d Deps) {
	if app == nil {
		return
	}

	if d.WS != nil {
		app.Get("/ws", d.WS.HandleChangeFeed)
	}

	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), d)
}
