package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/collymonsterr/podsummary/internal/middleware"
	"github.com/collymonsterr/podsummary/internal/repository"
)

type StatsHandler struct {
	repo *repository.TranscriptRepo
}

func NewStatsHandler(repo *repository.TranscriptRepo) *StatsHandler {
	return &StatsHandler{repo: repo}
}

// GetStats handles GET /api/stats
func (h *StatsHandler) GetStats(c fiber.Ctx) error {
	stats, err := h.repo.GetStats(c.Context())
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch statistics")
	}
	return c.JSON(stats)
}
