package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/arturoeanton/go-log-analyzer-ollama/internal/adapter/ai"
	"github.com/arturoeanton/go-log-analyzer-ollama/internal/adapter/store"
	"github.com/arturoeanton/go-log-analyzer-ollama/internal/handler"
	"github.com/arturoeanton/go-log-analyzer-ollama/internal/middleware"
	"github.com/arturoeanton/go-log-analyzer-ollama/internal/service"
	"github.com/arturoeanton/go-log-analyzer-ollama/internal/session"
	"github.com/arturoeanton/go-log-analyzer-ollama/pkg/config"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/joho/godotenv"

	_ "github.com/lib/pq"
)

func main() {
	// ── Load .env file ───────────────────────────────────────────────────
	_ = godotenv.Load() // silently ignore if .env doesn't exist

	// ── Configuration ────────────────────────────────────────────────────
	cfg := config.Load()

	slog.Info("🚀 Starting LogLens AI",
		"port", cfg.Port,
		"ollama_embed", cfg.OllamaEmbedURL,
		"ollama_chat", cfg.OllamaChatURL,
		"audit_enabled", cfg.DatabaseURL != "",
	)

	// ── Adapters ─────────────────────────────────────────────────────────
	ollamaAI := ai.NewOllamaProvider(
		ai.OllamaEndpointConfig{
			BaseURL: cfg.OllamaEmbedURL,
			Model:   cfg.OllamaEmbedModel,
			Token:   cfg.OllamaEmbedToken,
		},
		ai.OllamaEndpointConfig{
			BaseURL: cfg.OllamaChatURL,
			Model:   cfg.OllamaChatModel,
			Token:   cfg.OllamaChatToken,
		},
	)

	// ── Session + Services ───────────────────────────────────────────────
	sess := session.New()
	analyzeService := service.NewAnalyzeService(ollamaAI, sess)
	queryService := service.NewQueryService(ollamaAI, sess)
	summaryService := service.NewSummaryService(ollamaAI, sess, cfg.SummarySampleSize)

	// ── Fiber App ────────────────────────────────────────────────────────
	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ReadTimeout:  120 * time.Second,
		WriteTimeout: 120 * time.Second,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: []string{cfg.FrontendURL},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
	}))

	// ── Optional audit trail ─────────────────────────────────────────────
	var pgStore *store.PostgresStore
	if cfg.DatabaseURL != "" {
		var err error
		pgStore, err = store.NewPostgresStore(cfg.DatabaseURL)
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pgStore.Close()

		if err := pgStore.EnsureSchema(context.Background()); err != nil {
			slog.Error("failed to ensure audit schema", "error", err)
			os.Exit(1)
		}
		app.Use(middleware.AuditMiddleware(pgStore))
	}

	// ── Routes ───────────────────────────────────────────────────────────
	api := app.Group("/api/v1")

	api.Get("/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"app":    cfg.AppName,
			"model":  ollamaAI.ModelName(),
		})
	})

	handler.NewUploadHandler(analyzeService).Register(api)
	handler.NewQueryHandler(queryService).Register(api)
	handler.NewSummaryHandler(summaryService).Register(api)
	if pgStore != nil {
		handler.NewAuditHandler(pgStore).Register(api)
	}

	// ── Start ────────────────────────────────────────────────────────────
	slog.Info("🌐 Fiber listening", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
