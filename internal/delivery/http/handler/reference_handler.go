package handler

import (
	"staff-flow/internal/delivery/http/dto"
	"staff-flow/internal/pkg/response"
	"staff-flow/internal/store"

	"github.com/gofiber/fiber/v3"
)

// ReferenceHandler serves the seeded read-only collections the selection lists
// are built from.
type ReferenceHandler struct {
	store *store.Store
}

func NewReferenceHandler(st *store.Store) *ReferenceHandler {
	return &ReferenceHandler{store: st}
}

func (h *ReferenceHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/clients", h.ListClients)
	r.Get("/candidates", h.ListCandidates)
}

func (h *ReferenceHandler) ListClients(c fiber.Ctx) error {
	clients := h.store.ListClients()
	out := make([]dto.ClientResponse, 0, len(clients))
	for _, cl := range clients {
		out = append(out, dto.ClientResponse{ID: cl.ID, Name: cl.Name, Industry: cl.Industry})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *ReferenceHandler) ListCandidates(c fiber.Ctx) error {
	candidates := h.store.ListCandidates()
	out := make([]dto.CandidateResponse, 0, len(candidates))
	for _, cand := range candidates {
		out = append(out, dto.CandidateResponse{
			ID:       cand.ID,
			FullName: cand.FullName,
			Email:    cand.Email,
			Skills:   cand.Skills,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
