package main

import (
	"log"

	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"
	_ "github.com/joho/godotenv/autoload"

	"github.com/collymonsterr/podsummary/internal/client"
	"github.com/collymonsterr/podsummary/internal/config"
	"github.com/collymonsterr/podsummary/internal/middleware"
	"github.com/collymonsterr/podsummary/internal/view"
	"github.com/collymonsterr/podsummary/internal/webui"
)

func main() {
	cfg := config.LoadWeb()

	middleware.InitLogger(cfg.LogLevel, "podsummary-web")

	sessionDir, err := view.DefaultSessionDir()
	if err != nil {
		log.Fatalf("failed to locate session dir: %v", err)
	}
	session, err := view.NewSession(sessionDir)
	if err != nil {
		log.Fatalf("failed to open session store: %v", err)
	}

	backend := client.New(cfg.APIBaseURL)
	server, err := webui.NewServer(view.NewRouter(backend, session))
	if err != nil {
		log.Fatalf("failed to load templates: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:      "podsummary web",
		ServerHeader: "podsummary",
	})
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())

	server.Register(app)

	log.Printf("podsummary web starting on :%s (api=%s)", cfg.Port, cfg.APIBaseURL)
	log.Fatal(app.Listen(":" + cfg.Port))
}
