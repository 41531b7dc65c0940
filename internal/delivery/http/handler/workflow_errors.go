package handler

import (
	"errors"

	"staff-flow/internal/delivery/http/middleware"
	"staff-flow/internal/pkg/response"
	"staff-flow/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func mapWorkflowError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Please fill in required fields", nil, err)
	case errors.Is(err, usecase.ErrDuplicateAssignment):
		return middleware.NewAppError(fiber.StatusConflict, "Candidate is already assigned to this job", nil, err)
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, response.MessageNotFound, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
