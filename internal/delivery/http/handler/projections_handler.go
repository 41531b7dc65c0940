package handler

import (
	"staff-flow/internal/delivery/http/dto"
	"staff-flow/internal/pkg/response"
	"staff-flow/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ProjectionsHandler struct {
	uc usecase.ProjectionUsecase
}

func NewProjectionsHandler(uc usecase.ProjectionUsecase) *ProjectionsHandler {
	return &ProjectionsHandler{uc: uc}
}

func (h *ProjectionsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/dashboard", h.Dashboard)
	r.Get("/approvals/pending", h.PendingApprovals)
	r.Get("/payroll/export", h.PayrollExport)
}

func (h *ProjectionsHandler) Dashboard(c fiber.Ctx) error {
	counts := h.uc.DashboardCounts(c.Context())
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.DashboardResponse{
		OpenJobOrders:     counts.OpenJobOrders,
		Assignments:       counts.Assignments,
		PendingTimesheets: counts.PendingTimesheets,
		PayrollReady:      counts.PayrollReady,
	})
}

func (h *ProjectionsHandler) PendingApprovals(c fiber.Ctx) error {
	items := h.uc.PendingApprovals(c.Context())
	out := make([]dto.PendingApprovalResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.PendingApprovalResponse{
			TimesheetID:   it.TimesheetID,
			WorkDate:      it.WorkDate,
			HoursWorked:   it.HoursWorked,
			Description:   it.Description,
			CandidateID:   it.CandidateID,
			CandidateName: it.CandidateName,
			JobOrderID:    it.JobOrderID,
			JobTitle:      it.JobTitle,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *ProjectionsHandler) PayrollExport(c fiber.Ctx) error {
	items := h.uc.PayrollExport(c.Context())
	out := make([]dto.PayrollExportResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.PayrollExportResponse{
			TimesheetID:   it.TimesheetID,
			CandidateID:   it.CandidateID,
			CandidateName: it.CandidateName,
			WorkDate:      it.WorkDate,
			HoursWorked:   it.HoursWorked,
			PayRate:       it.PayRate,
			Amount:        it.Amount,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
