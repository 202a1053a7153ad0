package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"
	_ "github.com/joho/godotenv/autoload"
	"github.com/mmcdole/gofeed"

	"github.com/collymonsterr/podsummary/internal/config"
	"github.com/collymonsterr/podsummary/internal/db"
	"github.com/collymonsterr/podsummary/internal/handler"
	"github.com/collymonsterr/podsummary/internal/middleware"
	"github.com/collymonsterr/podsummary/internal/repository"
	"github.com/collymonsterr/podsummary/internal/router"
	"github.com/collymonsterr/podsummary/internal/service"
	"github.com/collymonsterr/podsummary/internal/summarizer"
	"github.com/collymonsterr/podsummary/internal/transcript"
	"github.com/collymonsterr/podsummary/internal/youtube"
)

func main() {
	cfg := config.Load()

	middleware.InitLogger(cfg.LogLevel, "podsummary-api")

	ctx := context.Background()
	pool, err := db.NewPool(ctx, db.Options{
		URL:      cfg.DatabaseURL,
		MaxConns: cfg.DBMaxConns,
		Retries:  cfg.DBConnectRetries,
		Backoff:  cfg.DBConnectBackoff,
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	handler.InitMetrics(pool)

	cache := service.NewCacheService(cfg.RedisURL)
	defer cache.Close()

	transcriptRepo := repository.NewTranscriptRepo(pool)
	statusRepo := repository.NewStatusRepo(pool)

	summarizeSvc := service.NewSummarizeService(
		transcriptRepo,
		timedTranscripts{transcript.NewClient(cfg.SearchAPIKey)},
		timedSummaries{summarizer.NewClient(cfg.OpenAIKey, cfg.OpenAIModel)},
		youtube.NewOEmbedClient(),
		cache,
	)
	channelSvc := service.NewChannelService(youtube.NewResolver(), gofeed.NewParser(), cache)

	h := &router.Handlers{
		Health:    handler.NewHealthHandler(pool, cache.Client()),
		Summarize: handler.NewSummarizeHandler(summarizeSvc),
		History:   handler.NewHistoryHandler(transcriptRepo, cache, cfg.HistoryLimit),
		Channel:   handler.NewChannelHandler(channelSvc),
		Status:    handler.NewStatusHandler(statusRepo),
		Stats:     handler.NewStatsHandler(transcriptRepo),
	}

	worker := service.NewRetentionWorker(transcriptRepo, cfg.RetentionMax, cfg.RetentionCheckEvery)
	go worker.Start(ctx)
	defer worker.Stop()

	app := fiber.New(fiber.Config{
		AppName:      "podsummary API",
		ServerHeader: "podsummary",
	})

	router.Setup(app, h, cfg.CORSOrigins, cfg.AdminKey)

	go func() {
		log.Printf("podsummary backend starting on :%s (env=%s)", cfg.Port, cfg.Environment)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down")
	if err := app.Shutdown(); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}

// timedTranscripts and timedSummaries record per-stage durations for
// the pipeline histograms.

type timedTranscripts struct {
	inner service.TranscriptFetcher
}

func (t timedTranscripts) Fetch(ctx context.Context, videoID string) (string, error) {
	start := time.Now()
	out, err := t.inner.Fetch(ctx, videoID)
	handler.Metrics.TranscriptFetchDuration.Observe(time.Since(start).Seconds())
	return out, err
}

type timedSummaries struct {
	inner service.Summarizer
}

func (t timedSummaries) Summarize(ctx context.Context, text string) (string, error) {
	start := time.Now()
	out, err := t.inner.Summarize(ctx, text)
	handler.Metrics.SummaryDuration.Observe(time.Since(start).Seconds())
	return out, err
}
