package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"civic-feedback/internal/config"
	"civic-feedback/internal/db"
	apihttp "civic-feedback/internal/http"
	"civic-feedback/internal/nlp"
	"civic-feedback/internal/repository"
	"civic-feedback/internal/service"
	"civic-feedback/internal/translate"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	if err := db.EnsureSchema(ctx, pool); err != nil {
		logger.Fatal("db schema", zap.Error(err))
	}

	feedbackRepo := repository.NewPgFeedbackRepository(pool)

	var oracle nlp.Oracle = nlp.NewLexiconOracle()
	if cfg.SentimentAPIURL != "" {
		oracle = nlp.NewHTTPOracle(cfg.SentimentAPIURL, cfg.SentimentAPIKey, zap.NewStdLog(logger))
	}

	var translator translate.Translator = translate.NewNoopTranslator()
	if cfg.TranslateAPIURL != "" {
		translator = translate.NewHTTPTranslator(cfg.TranslateAPIURL, cfg.TranslateAPIKey, zap.NewStdLog(logger))
	}

	guard := service.NewMemoryFinalizeGuard(0)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			guard = service.NewRedisFinalizeGuard(redisClient, 0)
		}
		cancel()
	}

	scorer := service.NewScorer(oracle, logger)
	selector := service.NewCategorySelector()
	districtSvc := service.NewDistrictFlowService(scorer, selector, translator, feedbackRepo, guard, cfg.MaxQuestions, logger)
	justiceSvc := service.NewJusticeFlowService(scorer, selector, translator, feedbackRepo, guard, logger)

	if cfg.JWTSecret == "" {
		logger.Warn("jwt secret not configured")
	}
	tokenSvc := service.NewTokenService(cfg.JWTSecret, time.Hour)
	adminSvc := service.NewAdminService(logger, cfg.AdminPasswordHash, tokenSvc)

	districtHandler := apihttp.NewDistrictHandler(logger, districtSvc)
	justiceHandler := apihttp.NewJusticeHandler(logger, justiceSvc)
	adminHandler := apihttp.NewAdminHandler(logger, adminSvc, feedbackRepo)
	router := apihttp.NewRouter(logger, cfg.CORSOrigins, districtHandler, justiceHandler, adminHandler, tokenSvc)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
