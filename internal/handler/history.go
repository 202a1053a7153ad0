package handler

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5"

	"github.com/collymonsterr/podsummary/internal/middleware"
	"github.com/collymonsterr/podsummary/internal/model"
	"github.com/collymonsterr/podsummary/internal/repository"
	"github.com/collymonsterr/podsummary/internal/service"
)

type HistoryHandler struct {
	repo  *repository.TranscriptRepo
	cache *service.CacheService
	limit int
}

func NewHistoryHandler(repo *repository.TranscriptRepo, cache *service.CacheService, limit int) *HistoryHandler {
	return &HistoryHandler{repo: repo, cache: cache, limit: limit}
}

// List handles GET /api/history — stored entries, newest first.
func (h *HistoryHandler) List(c fiber.Ctx) error {
	entries, err := h.repo.ListRecent(c.Context(), h.limit)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch history")
	}
	if entries == nil {
		entries = []model.Transcript{}
	}
	return c.JSON(entries)
}

// Delete handles DELETE /api/admin/transcript/:id (behind RequireAdminKey).
func (h *HistoryHandler) Delete(c fiber.Ctx) error {
	id, errMsg := middleware.ValidateEntryID(c.Params("id"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	videoID, err := h.repo.DeleteByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "History entry not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete entry")
	}

	if h.cache != nil {
		if err := h.cache.InvalidateSummary(c.Context(), videoID); err != nil {
			log.Printf("cache: summary invalidate error: %v", err)
		}
	}

	return c.JSON(fiber.Map{"success": true})
}
