package main

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"webcal/config"
	"webcal/internal/dto"
	"webcal/internal/handler"
	"webcal/internal/metrics"
	"webcal/internal/middleware"
	"webcal/internal/repository"
	"webcal/internal/service"
	"webcal/pkg/database"
)

func main() {
	cfg := config.Load()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	var repo repository.EventRepository
	switch cfg.StoreDriver {
	case "memory":
		logger.Info("using in-memory event store")
		repo = repository.NewMemoryEventRepository()
	default:
		db := database.NewMongoDB(cfg.MongoURI, cfg.MongoDB, logger)
		repo = repository.NewEventRepository(db)
	}

	svc := service.NewEventService(repo, cfg.AllowWipe)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			logger.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
			)
			return nil
		},
	}))
	e.Use(echoMw.Recover())
	e.Use(metrics.New().Middleware())

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")
	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Backend API is running!"})
	})
	handler.NewEventHandler(svc, logger).RegisterRoutes(api.Group("/events"))

	logger.Info("event store service starting", zap.String("port", cfg.ServerPort))
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
