package handler

import (
	"time"

	"staff-flow/internal/delivery/http/dto"
	"staff-flow/internal/delivery/http/middleware"
	"staff-flow/internal/domain/assignment"
	"staff-flow/internal/notification"
	"staff-flow/internal/pkg/response"
	"staff-flow/internal/store"
	"staff-flow/internal/usecase"
	"staff-flow/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type AssignmentsHandler struct {
	uc     usecase.WorkflowUsecase
	store  *store.Store
	notify *notification.Center
}

type assignCandidateRequest struct {
	JobOrderID  string `json:"job_order_id"`
	CandidateID string `json:"candidate_id"`
}

func NewAssignmentsHandler(uc usecase.WorkflowUsecase, st *store.Store, notify *notification.Center) *AssignmentsHandler {
	return &AssignmentsHandler{uc: uc, store: st, notify: notify}
}

func (h *AssignmentsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Assign)
	r.Get("/", h.List)
}

func (h *AssignmentsHandler) Assign(c fiber.Ctx) error {
	var req assignCandidateRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	a, err := h.uc.AssignCandidate(c.Context(), req.JobOrderID, req.CandidateID)
	if err != nil {
		h.notify.Error(c.Context(), "Could not assign candidate")
		return mapWorkflowError(err)
	}

	h.notify.Success(c.Context(), "Candidate assigned to job")
	ws.NotifyStoreChanged(ws.CollectionAssignments, a.ID)

	return response.Success(c, fiber.StatusCreated, response.MessageOK, h.toResponse(a))
}

func (h *AssignmentsHandler) List(c fiber.Ctx) error {
	assignments := h.store.ListAssignments()
	out := make([]dto.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		out = append(out, h.toResponse(a))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *AssignmentsHandler) toResponse(a assignment.JobAssignment) dto.AssignmentResponse {
	item := dto.AssignmentResponse{
		ID:           a.ID,
		JobOrderID:   a.JobOrderID,
		CandidateID:  a.CandidateID,
		AssignedDate: a.AssignedDate.UTC().Format(time.RFC3339),
		Status:       a.Status,
	}
	if jo, err := h.store.JobOrderByID(a.JobOrderID); err == nil {
		item.JobTitle = jo.JobTitle
	}
	if cand, err := h.store.CandidateByID(a.CandidateID); err == nil {
		item.CandidateName = cand.FullName
	}
	return item
}
