package handler

import (
	"staff-flow/internal/delivery/http/dto"
	"staff-flow/internal/delivery/http/middleware"
	"staff-flow/internal/domain/joborder"
	"staff-flow/internal/notification"
	"staff-flow/internal/pkg/response"
	"staff-flow/internal/store"
	"staff-flow/internal/usecase"
	"staff-flow/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type JobOrdersHandler struct {
	uc     usecase.WorkflowUsecase
	store  *store.Store
	notify *notification.Center
}

type createJobOrderRequest struct {
	ClientID  string  `json:"client_id"`
	JobTitle  string  `json:"job_title"`
	Location  string  `json:"location"`
	PayRate   float64 `json:"pay_rate"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	// Skills is the form's free-text field, comma separated.
	Skills         string   `json:"skills"`
	RequiredSkills []string `json:"required_skills"`
}

func NewJobOrdersHandler(uc usecase.WorkflowUsecase, st *store.Store, notify *notification.Center) *JobOrdersHandler {
	return &JobOrdersHandler{uc: uc, store: st, notify: notify}
}

func (h *JobOrdersHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Create)
	r.Get("/", h.List)
}

func (h *JobOrdersHandler) Create(c fiber.Ctx) error {
	var req createJobOrderRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	skills := req.RequiredSkills
	if len(skills) == 0 {
		skills = usecase.SplitSkills(req.Skills)
	}

	jo, err := h.uc.CreateJobOrder(c.Context(), usecase.CreateJobOrderInput{
		ClientID:       req.ClientID,
		JobTitle:       req.JobTitle,
		Location:       req.Location,
		PayRate:        req.PayRate,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		RequiredSkills: skills,
	})
	if err != nil {
		h.notify.Error(c.Context(), "Could not create job order")
		return mapWorkflowError(err)
	}

	h.notify.Success(c.Context(), "Job order "+jo.ID+" created")
	ws.NotifyStoreChanged(ws.CollectionJobOrders, jo.ID)

	return response.Success(c, fiber.StatusCreated, response.MessageOK, h.toResponse(jo))
}

func (h *JobOrdersHandler) List(c fiber.Ctx) error {
	jobOrders := h.store.ListJobOrders()
	out := make([]dto.JobOrderResponse, 0, len(jobOrders))
	for _, jo := range jobOrders {
		out = append(out, h.toResponse(jo))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *JobOrdersHandler) toResponse(jo joborder.JobOrder) dto.JobOrderResponse {
	item := dto.JobOrderResponse{
		ID:             jo.ID,
		ClientID:       jo.ClientID,
		JobTitle:       jo.JobTitle,
		RequiredSkills: jo.RequiredSkills,
		Location:       jo.Location,
		PayRate:        jo.PayRate,
		StartDate:      jo.StartDate,
		EndDate:        jo.EndDate,
		Status:         string(jo.Status),
	}
	if cl, err := h.store.ClientByID(jo.ClientID); err == nil {
		item.ClientName = cl.Name
	}
	return item
}
