package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	// internal imports
	"github.com/mimivibe/backend/api/http"
	"github.com/mimivibe/backend/api/http/handlers"
	"github.com/mimivibe/backend/pkg/config"
	"github.com/mimivibe/backend/pkg/health"
	"github.com/mimivibe/backend/pkg/health/checkers"
	"github.com/mimivibe/backend/pkg/llm/openai"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	// Load configuration from env/.env
	cfg := config.Load()
	slog.Info("starting backend", "model", cfg.OpenAIModel, "mock_mode", cfg.MockLLM)

	// LLM provider, shared read-only by all request handlers
	llmClient, err := openai.New(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.MockLLM)
	if err != nil {
		log.Fatalf("init llm client: %v", err)
	}
	askHandler := handlers.NewAskHandler(llmClient)

	// Health service: compose checkers
	readiness := health.NewService(checkers.NewProviderChecker(cfg.OpenAIAPIKey, cfg.MockLLM))
	healthHandler := handlers.NewHealthHandler(readiness)

	referralHandler := handlers.NewReferralHandler()

	app := fiber.New()
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New())
	app.Use(recover.New())

	// Register routes
	http.Register(app, askHandler, healthHandler, referralHandler)

	// Start server
	port := cfg.Port
	log.Printf("HTTP server listening on :%s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
