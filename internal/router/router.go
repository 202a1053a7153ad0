package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/collymonsterr/podsummary/internal/handler"
	"github.com/collymonsterr/podsummary/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Health    *handler.HealthHandler
	Summarize *handler.SummarizeHandler
	History   *handler.HistoryHandler
	Channel   *handler.ChannelHandler
	Status    *handler.StatusHandler
	Stats     *handler.StatsHandler
}

// Setup configures the middleware stack and all API routes on the given Fiber app.
func Setup(app *fiber.App, h *Handlers, corsOrigins, adminKey string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(middleware.NewCORS(corsOrigins))
	app.Use(handler.MetricsMiddleware())

	// Health checks (before API group, no rate limiting)
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)
	app.Get("/metrics", handler.MetricsHandler())

	// API routes
	api := app.Group("/api")

	reads := middleware.NewReadRateLimiter().Handler()

	// Root probe — the UI's connectivity check
	api.Get("/", h.Health.Root, reads)

	// Summarize
	api.Post("/summarize", h.Summarize.Summarize, middleware.NewSummarizeRateLimiter().Handler())

	// History
	api.Get("/history", h.History.List, reads)

	// Channel listings
	api.Post("/channel-videos", h.Channel.ListVideos, middleware.NewChannelRateLimiter().Handler())

	// Status checks
	api.Post("/status", h.Status.Create, reads)
	api.Get("/status", h.Status.List, reads)

	// Stats
	api.Get("/stats", h.Stats.GetStats, reads)

	// Admin routes — key required on every request
	admin := api.Group("/admin",
		middleware.NewAdminRateLimiter().Handler(),
		middleware.RequireAdminKey(adminKey),
	)
	admin.Delete("/transcript/:id", h.History.Delete)
}
