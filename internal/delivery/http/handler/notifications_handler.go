package handler

import (
	"staff-flow/internal/notification"
	"staff-flow/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type NotificationsHandler struct {
	center *notification.Center
}

func NewNotificationsHandler(center *notification.Center) *NotificationsHandler {
	return &NotificationsHandler{center: center}
}

func (h *NotificationsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/notifications", h.List)
}

func (h *NotificationsHandler) List(c fiber.Ctx) error {
	items := h.center.List(c.Context())
	if items == nil {
		items = []notification.Notification{}
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}
