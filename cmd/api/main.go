package main

// @title Attractions Service API
// @version 1.0.0
// @description Сервис каталога туристических достопримечательностей. Хранит записи, обогащённые данными TripAdvisor Content API, считает лайки и личные списки пользователей, упорядочивает выборки по близости.
// @description
// @description Основные возможности:
// @description - Каталог достопримечательностей с фильтрами и радиусом от точки
// @description - Синхронизация записей с TripAdvisor (детали, фотографии, отзывы)
// @description - Лайки и личные списки с оценкой бюджета
// @description - Упорядочивание выборок жадным обходом ближайшего соседа

// @contact.name API Support
// @contact.email support@attractions-service.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/attractions-service/docs"
	"github.com/attractions-service/internal/config"
	httpDelivery "github.com/attractions-service/internal/delivery/http"
	"github.com/attractions-service/internal/delivery/http/handler"
	"github.com/attractions-service/internal/infrastructure/tripadvisor"
	"github.com/attractions-service/internal/pkg/logger"
	"github.com/attractions-service/internal/repository/cache"
	"github.com/attractions-service/internal/repository/postgres"
	"github.com/attractions-service/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Attractions Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()
	log.Info("PostgreSQL connected")

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize Repositories
	attractionRepo := postgres.NewAttractionRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	countryRepo := postgres.NewCountryRepository(db)
	engagementRepo := postgres.NewEngagementRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)
	providerRepo := tripadvisor.NewTripAdvisorClient(&cfg.TripAdvisor, log)

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	attractionUC := usecase.NewAttractionUseCase(attractionRepo, countryRepo, log)
	engagementUC := usecase.NewEngagementUseCase(engagementRepo, attractionRepo, log)
	reconcileUC := usecase.NewReconcileUseCase(attractionRepo, categoryRepo, log)
	syncUC := usecase.NewSyncUseCase(
		attractionRepo,
		countryRepo,
		cacheRepo,
		providerRepo,
		reconcileUC,
		cfg.Cache.SyncCacheTTL,
		log,
	)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Handlers
	attractionHandler := handler.NewAttractionHandler(attractionUC, log)
	engagementHandler := handler.NewEngagementHandler(engagementUC, log)
	syncHandler := handler.NewSyncHandler(syncUC, log)
	countryHandler := handler.NewCountryHandler(attractionUC, syncUC, log)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		attractionHandler,
		engagementHandler,
		syncHandler,
		countryHandler,
	)

	log.Info("HTTP server initialized")

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
