package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/collymonsterr/podsummary/internal/middleware"
	"github.com/collymonsterr/podsummary/internal/model"
	"github.com/collymonsterr/podsummary/internal/service"
)

type ChannelHandler struct {
	svc *service.ChannelService
}

func NewChannelHandler(svc *service.ChannelService) *ChannelHandler {
	return &ChannelHandler{svc: svc}
}

// ListVideos handles POST /api/channel-videos
func (h *ChannelHandler) ListVideos(c fiber.Ctx) error {
	var req model.ChannelVideosRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	channelURL, errMsg := middleware.ValidateChannelURL(req.ChannelURL)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	resp, err := h.svc.ListVideos(c.Context(), channelURL)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadGateway, "CHANNEL_LOOKUP_FAILED", "Failed to fetch channel videos")
	}

	return c.JSON(resp)
}
