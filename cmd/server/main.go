// @title         promptenhancer API
// @version       1.0
// @description   Service that rewrites a draft prompt via an LLM provider (OpenAI or Mistral), cleans the reply and appends static writing guidance.
// @BasePath      /api/v1
// @schemes       http
// @host          localhost:8080
package main

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	redisstore "github.com/gofiber/storage/redis/v3"
	swagger "github.com/gofiber/swagger"
	"go.uber.org/zap"

	_ "promptenhancer/docs"

	// internal imports
	apihttp "promptenhancer/api/http"
	"promptenhancer/api/http/handlers"
	"promptenhancer/api/http/presenter"
	"promptenhancer/pkg/config"
	"promptenhancer/pkg/enhance"
	"promptenhancer/pkg/health"
	"promptenhancer/pkg/health/checkers"
	"promptenhancer/pkg/history"
	"promptenhancer/pkg/llm"
	pgrepo "promptenhancer/pkg/repository/postgres"
	"promptenhancer/pkg/storage/postgres"
	redisconn "promptenhancer/pkg/storage/redis"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// Load configuration from env/.env
	cfg := config.Load()

	// LLM provider
	provider, err := llm.ParseProvider(cfg.Provider)
	if err != nil {
		logger.Fatal("invalid PROVIDER", zap.Error(err))
	}
	model, err := llm.New(llm.ProviderConfig{
		Provider:       provider,
		OpenAIAPIKey:   cfg.OpenAIAPIKey,
		OpenAIModel:    cfg.OpenAIModel,
		OpenAIBaseURL:  cfg.OpenAIBaseURL,
		MistralAPIKey:  cfg.MistralAPIKey,
		MistralModel:   cfg.MistralModel,
		MistralBaseURL: cfg.MistralBaseURL,
	})
	if err != nil {
		logger.Fatal("llm client init", zap.Error(err))
	}

	// Optional Postgres-backed history
	var historyRepo history.Repository
	var healthChecks []health.Checker
	if cfg.DatabaseURL != "" {
		pool, err := postgres.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("postgres connect", zap.Error(err))
		}
		defer pool.Close()
		repo, err := pgrepo.NewHistoryRepository(pool)
		if err != nil {
			logger.Fatal("init history repo", zap.Error(err))
		}
		historyRepo = repo
		healthChecks = append(healthChecks, checkers.NewPostgresChecker(pool))
	} else {
		logger.Info("DATABASE_URL not set, history disabled")
	}

	// Rate limiter storage: Redis when reachable, in-memory otherwise
	var limiterStorage fiber.Storage
	if cfg.RedisURL != "" {
		client, err := redisconn.Connect(context.Background(), cfg.RedisURL)
		if err != nil {
			logger.Warn("redis unavailable, rate limiter falls back to in-memory store", zap.Error(err))
		} else {
			defer client.Close()
			limiterStorage = redisstore.New(redisstore.Config{URL: cfg.RedisURL})
			healthChecks = append(healthChecks, checkers.NewRedisChecker(client))
		}
	}

	// Wire dependencies (Clean Architecture)
	enhanceUC := enhance.NewService(model, string(provider), cfg.MaxPromptChars,
		time.Duration(cfg.LLMTimeoutSeconds)*time.Second, logger)
	enhanceHandler := handlers.NewEnhanceHandler(enhanceUC, historyRepo, logger)
	historyHandler := handlers.NewHistoryHandler(historyRepo)

	// Health service: compose checkers
	readiness := health.NewService(healthChecks...)
	healthHandler := handlers.NewHealthHandler(readiness)

	app := fiber.New()
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORSOrigins}))

	rateLimit := limiter.New(limiter.Config{
		Max:        cfg.RateLimitMax,
		Expiration: time.Duration(cfg.RateLimitWindowSeconds) * time.Second,
		Storage:    limiterStorage,
		LimitReached: func(c *fiber.Ctx) error {
			return presenter.Error(c, fiber.StatusTooManyRequests, "too many requests, slow down")
		},
	})

	// Register routes
	apihttp.Register(app, enhanceHandler, historyHandler, healthHandler, rateLimit)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Start server
	logger.Info("HTTP server listening",
		zap.String("port", cfg.Port),
		zap.String("provider", string(provider)),
		zap.String("model", model.ModelName()))
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
