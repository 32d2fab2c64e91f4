package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/search-enrichment-service/internal/config"
	"github.com/search-enrichment-service/internal/domain/repository"
	"github.com/search-enrichment-service/internal/pkg/logger"
	"github.com/search-enrichment-service/internal/repository/cache"
	"github.com/search-enrichment-service/internal/repository/postgres"
	redisRepo "github.com/search-enrichment-service/internal/repository/redis"
	"github.com/search-enrichment-service/internal/repository/reference"
	"github.com/search-enrichment-service/internal/usecase"
	"github.com/search-enrichment-service/internal/worker"
	"github.com/search-enrichment-service/internal/worker/search"
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

	log.Info("Starting Search Enrichment Worker")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.Int("batch_size", cfg.Worker.BatchSize),
		zap.String("input_stream", cfg.Worker.InputStream),
		zap.String("output_stream", cfg.Worker.OutputStream),
		zap.Bool("persist", cfg.Worker.Persist))

	// 3. Load reference data
	locations, err := reference.LoadLocationsFile(cfg.Reference.LocationsFile)
	if err != nil {
		log.Fatal("Failed to load locations", zap.Error(err))
	}
	rates, err := reference.LoadRatesFile(cfg.Reference.RatesFile)
	if err != nil {
		log.Fatal("Failed to load exchange rates", zap.Error(err))
	}
	log.Info("Reference data loaded",
		zap.Int("locations", locations.Len()),
		zap.Int("rates", rates.Len()),
		zap.String("rates_date", rates.RecordDate()))

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

	// 5. Connect to PostgreSQL (optional)
	var searchRepo repository.SearchRepository
	if cfg.Worker.Persist && cfg.HasDatabase() {
		db, err := postgres.New(&cfg.Database, log)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Error("Failed to close PostgreSQL connection", zap.Error(err))
			}
		}()

		migrateCtx, migrateCancel := context.WithTimeout(context.Background(), 30*time.Second)
		err = db.Migrate(migrateCtx)
		migrateCancel()
		if err != nil {
			log.Fatal("Failed to migrate schema", zap.Error(err))
		}

		searchRepo = postgres.NewSearchRepository(db)
	}

	// 6. Initialize repositories and use cases
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), cfg.Worker.StreamReadTimeout, log)
	enrichmentUC := usecase.NewEnrichmentUseCase(locations, rates, log)

	var store search.SearchStore
	if cfg.Worker.Persist {
		store = usecase.NewSearchUseCase(searchRepo, cache.NewCacheRepository(redisClient), log, cfg.Cache.SearchCacheTTL)
	}

	// 7. Initialize workers
	enrichmentWorker := search.NewSearchEnrichmentWorker(
		streamRepo,
		enrichmentUC,
		store,
		search.Streams{
			Input:  cfg.Worker.InputStream,
			Output: cfg.Worker.OutputStream,
			Failed: cfg.Worker.FailedStream,
		},
		cfg.Worker.ConsumerGroup,
		cfg.Worker.BatchSize,
		log,
	)

	// 8. Create worker manager and register workers
	workerManager := worker.NewWorkerManager(log, worker.DefaultShutdownTimeout)
	workerManager.Register(enrichmentWorker)

	// 9. Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	cancel()

	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}

	stats := enrichmentWorker.Stats()
	log.Info("Worker shutdown complete",
		zap.Uint64("read", stats.Read),
		zap.Uint64("enriched", stats.Enriched),
		zap.Uint64("failed", stats.Failed),
		zap.Uint64("skipped", stats.Skipped))
}
