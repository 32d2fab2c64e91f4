package http

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/search-enrichment-service/internal/config"
	"github.com/search-enrichment-service/internal/delivery/http/handler"
	"github.com/search-enrichment-service/internal/delivery/http/middleware"
	"github.com/search-enrichment-service/internal/pkg/errors"
	"github.com/search-enrichment-service/internal/pkg/utils"
)

// HealthCheck - проверка внешней зависимости (Redis, PostgreSQL)
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger
	checks []HealthCheck

	// Handlers
	enrichmentHandler *handler.EnrichmentHandler
	searchHandler     *handler.SearchHandler
	referenceHandler  *handler.ReferenceHandler
}

// NewServer - создание нового HTTP сервера.
// searchHandler может быть nil, если хранилище поисков не настроено.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	enrichmentHandler *handler.EnrichmentHandler,
	searchHandler *handler.SearchHandler,
	referenceHandler *handler.ReferenceHandler,
	checks ...HealthCheck,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Search Enrichment Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		BodyLimit:    8 * 1024 * 1024,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:               app,
		config:            cfg,
		logger:            logger,
		checks:            checks,
		enrichmentHandler: enrichmentHandler,
		searchHandler:     searchHandler,
		referenceHandler:  referenceHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// App - экземпляр Fiber, используется в тестах через app.Test
func (s *Server) App() *fiber.App {
	return s.app
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	api.Get("/health", s.health)

	api.Post("/enrich", s.enrichmentHandler.Enrich)

	if s.searchHandler != nil {
		api.Get("/searches/:id", s.searchHandler.GetSearch)
	}

	// Reference routes
	api.Get("/locations/:code", s.referenceHandler.GetLocation)
	api.Get("/distance", s.referenceHandler.GetDistance)
	api.Get("/rates/:currency", s.referenceHandler.GetRate)
}

// health godoc
// @Summary Проверка состояния сервиса
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /api/v1/health [get]
func (s *Server) health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	status := "healthy"
	code := fiber.StatusOK
	dependencies := make(fiber.Map, len(s.checks))
	for _, check := range s.checks {
		if err := check.Check(ctx); err != nil {
			s.logger.Warn("Health check failed", zap.String("dependency", check.Name), zap.Error(err))
			dependencies[check.Name] = err.Error()
			status = "degraded"
			code = fiber.StatusServiceUnavailable
			continue
		}
		dependencies[check.Name] = "ok"
	}

	return c.Status(code).JSON(fiber.Map{
		"status":       status,
		"time":         time.Now(),
		"dependencies": dependencies,
	})
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - ошибки, не обработанные хендлерами (404 маршрута, 413 тела и т.п.)
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if stderrors.As(err, &fiberErr) {
			appErr := errors.New("HTTP_ERROR", fiberErr.Message, fiberErr.Code)
			return c.Status(fiberErr.Code).JSON(utils.ErrorResponse{Error: appErr})
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return utils.SendError(c, err)
	}
}
