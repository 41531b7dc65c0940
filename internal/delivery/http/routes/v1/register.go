package v1

import (
	"staff-flow/internal/delivery/http/handler"
	"staff-flow/internal/notification"
	"staff-flow/internal/store"
	"staff-flow/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type Deps struct {
	Store      *store.Store
	Workflow   usecase.WorkflowUsecase
	Projection usecase.ProjectionUsecase
	Notify     *notification.Center
}

func Register(r fiber.Router, d Deps) {
	if r == nil {
		return
	}

	referenceHandler := handler.NewReferenceHandler(d.Store)
	jobOrdersHandler := handler.NewJobOrdersHandler(d.Workflow, d.Store, d.Notify)
	assignmentsHandler := handler.NewAssignmentsHandler(d.Workflow, d.Store, d.Notify)
	timesheetsHandler := handler.NewTimesheetsHandler(d.Workflow, d.Store, d.Notify)
	projectionsHandler := handler.NewProjectionsHandler(d.Projection)
	notificationsHandler := handler.NewNotificationsHandler(d.Notify)

	referenceHandler.RegisterRoutes(r)
	projectionsHandler.RegisterRoutes(r)
	notificationsHandler.RegisterRoutes(r)

	jobOrdersHandler.RegisterRoutes(r.Group("/job-orders"))
	assignmentsHandler.RegisterRoutes(r.Group("/assignments"))
	timesheetsHandler.RegisterRoutes(r.Group("/timesheets"))
}
