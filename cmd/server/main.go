// @title         AI Resume Screening SaaS
// @version       1.0.4
// @description   Secure AI resume screening API with NLP scoring, insights, and SaaS metadata.
// @schemes       http
// @host          localhost:8000
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name x-api-key
// @description API key for the analyze endpoint.
package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	swagger "github.com/gofiber/swagger"
	"go.uber.org/zap"

	_ "github.com/ekazakov/screening/docs"

	// internal imports
	httpapi "github.com/ekazakov/screening/api/http"
	"github.com/ekazakov/screening/api/http/handlers"
	"github.com/ekazakov/screening/pkg/config"
	"github.com/ekazakov/screening/pkg/embedding"
	"github.com/ekazakov/screening/pkg/health"
	"github.com/ekazakov/screening/pkg/health/checkers"
	"github.com/ekazakov/screening/pkg/llm/openrouter"
	"github.com/ekazakov/screening/pkg/logger"
	"github.com/ekazakov/screening/pkg/metadata"
	"github.com/ekazakov/screening/pkg/nlp"
	"github.com/ekazakov/screening/pkg/resume"
	"github.com/ekazakov/screening/pkg/scoring"
	"github.com/ekazakov/screening/pkg/screening"
	"github.com/ekazakov/screening/pkg/security/apikey"
	"github.com/ekazakov/screening/pkg/summary"
)

func main() {
	app := fiber.New()

	// Load configuration from env/.env
	cfg := config.Load()

	zlog, err := logger.New(cfg.LogJSON, cfg.Debug)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zlog.Sync()

	// Static resources are loaded once and shared read-only between
	// requests. A missing or malformed file is fatal at startup.
	vocab, err := nlp.LoadVocabulary(cfg.SkillsPath)
	if err != nil {
		zlog.Fatal("load skill vocabulary", zap.Error(err))
	}
	jdBytes, err := os.ReadFile(cfg.JobDescriptionPath)
	if err != nil {
		zlog.Fatal("load default job description", zap.Error(err))
	}
	staticJD := string(jdBytes)

	// OpenRouter serves both chat (summaries) and embeddings (similarity).
	llmClient := openrouter.New(
		cfg.OpenRouterAPIKey,
		cfg.OpenRouterBase,
		cfg.OpenRouterModel,
		cfg.OpenRouterEmbedModel,
		cfg.OpenRouterAppTitle,
		cfg.OpenRouterReferer,
	)

	similarity := embedding.NewProvider(llmClient)
	scorer := scoring.New(similarity, cfg.SemanticWeight, cfg.SkillsWeight, zlog)
	summarizer := summary.New(llmClient, zlog)
	meta := metadata.NewGenerator(screening.ServiceName, screening.Version)

	svc := screening.NewService(vocab, staticJD, resume.ExtractText, scorer, summarizer, meta, zlog)

	analyzeHandler := handlers.NewAnalyzeHandler(svc)
	readiness := health.NewService(checkers.NewResourcesChecker(vocab, staticJD))
	healthHandler := handlers.NewHealthHandler(readiness, cfg.OpenRouterEmbedModel, cfg.OpenRouterModel)

	// API-key middleware for the analyze route
	authMW := apikey.New(cfg.APIKey)

	// Register routes
	httpapi.Register(app, analyzeHandler, healthHandler, authMW)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Start server
	zlog.Info("HTTP server listening",
		zap.String("port", cfg.Port),
		zap.Int("vocabulary_size", len(vocab)),
	)
	if err := app.Listen(":" + cfg.Port); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
