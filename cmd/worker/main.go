package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/attractions-service/internal/config"
	"github.com/attractions-service/internal/infrastructure/tripadvisor"
	"github.com/attractions-service/internal/pkg/logger"
	"github.com/attractions-service/internal/repository/cache"
	"github.com/attractions-service/internal/repository/postgres"
	redisRepo "github.com/attractions-service/internal/repository/redis"
	"github.com/attractions-service/internal/usecase"
	"github.com/attractions-service/internal/worker"
	workersync "github.com/attractions-service/internal/worker/sync"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Check if worker is enabled
	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Attraction Sync Worker")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.Int("max_retries", cfg.Worker.MaxRetries))

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

	// 5. Initialize repositories
	attractionRepo := postgres.NewAttractionRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	countryRepo := postgres.NewCountryRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)
	providerRepo := tripadvisor.NewTripAdvisorClient(&cfg.TripAdvisor, log)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	// 6. Initialize use cases
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

	// 7. Initialize workers
	syncWorker := workersync.NewAttractionSyncWorker(
		streamRepo,
		syncUC,
		cfg.Worker.ConsumerGroup,
		cfg.Worker.MaxRetries,
		log,
	)

	// 8. Create worker manager and register workers
	workerManager := worker.NewWorkerManager(log)
	workerManager.Register(syncWorker)

	// 9. Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start workers
	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	// Cancel context to stop workers
	cancel()

	// Stop worker manager
	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}

	log.Info("Worker shutdown complete")
}
