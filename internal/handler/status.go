package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/collymonsterr/podsummary/internal/middleware"
	"github.com/collymonsterr/podsummary/internal/model"
	"github.com/collymonsterr/podsummary/internal/repository"
)

const statusListLimit = 1000

type StatusHandler struct {
	repo *repository.StatusRepo
}

func NewStatusHandler(repo *repository.StatusRepo) *StatusHandler {
	return &StatusHandler{repo: repo}
}

// Create handles POST /api/status
func (h *StatusHandler) Create(c fiber.Ctx) error {
	var req model.StatusCheckCreate
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	name, errMsg := middleware.ValidateClientName(req.ClientName)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	check, err := h.repo.Insert(c.Context(), name)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to store status check")
	}
	return c.JSON(check)
}

// List handles GET /api/status
func (h *StatusHandler) List(c fiber.Ctx) error {
	checks, err := h.repo.List(c.Context(), statusListLimit)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch status checks")
	}
	if checks == nil {
		checks = []model.StatusCheck{}
	}
	return c.JSON(checks)
}
