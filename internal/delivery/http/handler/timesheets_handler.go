package handler

import (
	"staff-flow/internal/delivery/http/dto"
	"staff-flow/internal/delivery/http/middleware"
	"staff-flow/internal/domain/timesheet"
	"staff-flow/internal/notification"
	"staff-flow/internal/pkg/response"
	"staff-flow/internal/store"
	"staff-flow/internal/usecase"
	"staff-flow/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type TimesheetsHandler struct {
	uc     usecase.WorkflowUsecase
	store  *store.Store
	notify *notification.Center
}

type submitTimesheetRequest struct {
	AssignmentID string  `json:"assignment_id"`
	WorkDate     string  `json:"work_date"`
	HoursWorked  float64 `json:"hours_worked"`
	Description  string  `json:"description"`
}

type decideTimesheetRequest struct {
	Approve bool `json:"approve"`
}

func NewTimesheetsHandler(uc usecase.WorkflowUsecase, st *store.Store, notify *notification.Center) *TimesheetsHandler {
	return &TimesheetsHandler{uc: uc, store: st, notify: notify}
}

func (h *TimesheetsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Submit)
	r.Get("/", h.List)
	r.Post("/:id/decision", h.Decide)
}

func (h *TimesheetsHandler) Submit(c fiber.Ctx) error {
	var req submitTimesheetRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	ts, err := h.uc.SubmitTimesheet(c.Context(), usecase.SubmitTimesheetInput{
		AssignmentID: req.AssignmentID,
		WorkDate:     req.WorkDate,
		HoursWorked:  req.HoursWorked,
		Description:  req.Description,
	})
	if err != nil {
		h.notify.Error(c.Context(), "Could not submit timesheet")
		return mapWorkflowError(err)
	}

	h.notify.Success(c.Context(), "Timesheet submitted for approval")
	ws.NotifyStoreChanged(ws.CollectionTimesheets, ts.ID)

	return response.Success(c, fiber.StatusCreated, response.MessageOK, toTimesheetResponse(ts))
}

func (h *TimesheetsHandler) List(c fiber.Ctx) error {
	timesheets := h.store.ListTimesheets()
	out := make([]dto.TimesheetResponse, 0, len(timesheets))
	for _, ts := range timesheets {
		out = append(out, toTimesheetResponse(ts))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *TimesheetsHandler) Decide(c fiber.Ctx) error {
	id := c.Params("id")

	var req decideTimesheetRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	ts, err := h.uc.DecideTimesheet(c.Context(), id, req.Approve)
	if err != nil {
		h.notify.Error(c.Context(), "Could not decide timesheet")
		return mapWorkflowError(err)
	}

	if req.Approve {
		h.notify.Success(c.Context(), "Timesheet approved for payroll")
	} else {
		h.notify.Success(c.Context(), "Timesheet rejected")
	}
	ws.NotifyStoreChanged(ws.CollectionTimesheets, ts.ID)

	return response.Success(c, fiber.StatusOK, response.MessageOK, toTimesheetResponse(ts))
}

func toTimesheetResponse(ts timesheet.Timesheet) dto.TimesheetResponse {
	return dto.TimesheetResponse{
		ID:           ts.ID,
		AssignmentID: ts.AssignmentID,
		WorkDate:     ts.WorkDate,
		HoursWorked:  ts.HoursWorked,
		Description:  ts.Description,
		Status:       string(ts.Status),
	}
}
