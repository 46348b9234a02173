package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/attractions-service/internal/config"
	"github.com/attractions-service/internal/delivery/http/handler"
	"github.com/attractions-service/internal/delivery/http/middleware"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	attractionHandler *handler.AttractionHandler
	engagementHandler *handler.EngagementHandler
	syncHandler       *handler.SyncHandler
	countryHandler    *handler.CountryHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	attractionHandler *handler.AttractionHandler,
	engagementHandler *handler.EngagementHandler,
	syncHandler *handler.SyncHandler,
	countryHandler *handler.CountryHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Attractions Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:               app,
		config:            cfg,
		logger:            logger,
		attractionHandler: attractionHandler,
		engagementHandler: engagementHandler,
		syncHandler:       syncHandler,
		countryHandler:    countryHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
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

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Attraction routes
	api.Get("/attractions", s.attractionHandler.List)
	api.Get("/attractions/popular", s.attractionHandler.Popular)
	api.Get("/attractions/by-distance", s.attractionHandler.ByDistance)
	api.Get("/attractions/:id", s.attractionHandler.GetByID)
	api.Post("/attractions/:id/sync", s.syncHandler.SyncAttraction)

	// Engagement routes
	api.Post("/attractions/:id/like", s.engagementHandler.ToggleLike)
	api.Post("/attractions/:id/save", s.engagementHandler.ToggleSave)
	api.Get("/my-list", s.engagementHandler.MyList)
	api.Get("/my-list/by-distance", s.engagementHandler.MyListByDistance)
	api.Get("/my-list/budget", s.engagementHandler.MyListBudget)

	// Country routes
	api.Get("/countries", s.countryHandler.List)
	api.Get("/countries/:id/popular", s.countryHandler.Popular)
	api.Get("/countries/:id/search", s.countryHandler.Search)
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

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
