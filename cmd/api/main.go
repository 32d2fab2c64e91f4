package main

// @title Search Enrichment Service API
// @version 1.0.0
// @description Сервис обогащения поисков авиабилетов. Принимает документ поиска и возвращает его с вычисленными полями.
// @description
// @description Основные возможности:
// @description - Обогащение документа: страны, расстояния, цены в EUR, тип поездки, пассажиры
// @description - Выдача сохраненных обогащенных поисков по search_id
// @description - Справочники локаций и курсов валют

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/search-enrichment-service/docs"
	"github.com/search-enrichment-service/internal/config"
	httpDelivery "github.com/search-enrichment-service/internal/delivery/http"
	"github.com/search-enrichment-service/internal/delivery/http/handler"
	"github.com/search-enrichment-service/internal/domain/repository"
	"github.com/search-enrichment-service/internal/pkg/logger"
	"github.com/search-enrichment-service/internal/repository/cache"
	"github.com/search-enrichment-service/internal/repository/postgres"
	"github.com/search-enrichment-service/internal/repository/reference"
	"github.com/search-enrichment-service/internal/usecase"
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

	log.Info("Starting Search Enrichment Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

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
		zap.String("rates_date", rates.RecordDate()),
	)

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	log.Info("Redis connected")

	healthChecks := []httpDelivery.HealthCheck{
		{Name: "redis", Check: redisClient.Health},
	}

	// 5. Connect to PostgreSQL (optional)
	var (
		db         *postgres.DB
		searchRepo repository.SearchRepository
	)
	if cfg.HasDatabase() {
		db, err = postgres.New(&cfg.Database, log)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err = db.Migrate(ctx)
		cancel()
		if err != nil {
			log.Fatal("Failed to migrate schema", zap.Error(err))
		}

		searchRepo = postgres.NewSearchRepository(db)
		healthChecks = append(healthChecks, httpDelivery.HealthCheck{Name: "postgres", Check: db.Health})
		log.Info("PostgreSQL connected")
	} else {
		log.Warn("PostgreSQL is not configured, searches are served from cache only")
	}

	// 6. Initialize use cases
	cacheRepo := cache.NewCacheRepository(redisClient)
	enrichmentUC := usecase.NewEnrichmentUseCase(locations, rates, log)
	searchUC := usecase.NewSearchUseCase(searchRepo, cacheRepo, log, cfg.Cache.SearchCacheTTL)

	log.Info("Use cases initialized")

	// 7. Initialize HTTP handlers
	enrichmentHandler := handler.NewEnrichmentHandler(enrichmentUC, log)
	searchHandler := handler.NewSearchHandler(searchUC, log)
	referenceHandler := handler.NewReferenceHandler(locations, rates, log)

	// 8. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		enrichmentHandler,
		searchHandler,
		referenceHandler,
		healthChecks...,
	)

	// 9. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 10. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if db != nil {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL", zap.Error(err))
		}
	}

	if err := redisClient.Close(); err != nil {
		log.Error("Failed to close Redis", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
