package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/collymonsterr/podsummary/internal/middleware"
	"github.com/collymonsterr/podsummary/internal/model"
	"github.com/collymonsterr/podsummary/internal/service"
	"github.com/collymonsterr/podsummary/internal/transcript"
)

type SummarizeHandler struct {
	svc *service.SummarizeService
}

func NewSummarizeHandler(svc *service.SummarizeService) *SummarizeHandler {
	return &SummarizeHandler{svc: svc}
}

// Summarize handles POST /api/summarize
func (h *SummarizeHandler) Summarize(c fiber.Ctx) error {
	var req model.SummarizeRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	url, errMsg := middleware.ValidateVideoURL(req.YoutubeURL)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	resp, err := h.svc.Summarize(c.Context(), url)
	if err != nil {
		return summarizeError(c, err)
	}

	if resp.IsCached {
		Metrics.SummarizeTotal.WithLabelValues("cached").Inc()
	} else {
		Metrics.SummarizeTotal.WithLabelValues("fresh").Inc()
	}

	return c.JSON(resp)
}

func summarizeError(c fiber.Ctx, err error) error {
	Metrics.SummarizeTotal.WithLabelValues("error").Inc()

	if errors.Is(err, service.ErrInvalidVideoURL) {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_URL", err.Error())
	}
	if errors.Is(err, transcript.ErrNoTranscript) {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "NO_TRANSCRIPT", "No transcript found for this video")
	}

	// Upstream provider errors keep their status and detail.
	var se *transcript.StatusError
	if errors.As(err, &se) {
		status := se.StatusCode
		if status < 400 || status > 599 {
			status = fiber.StatusBadGateway
		}
		return middleware.ErrorResponse(c, status, "TRANSCRIPT_PROVIDER_ERROR", se.Error())
	}

	return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Error processing request")
}
