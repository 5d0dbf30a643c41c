package main

import (
	"strconv"

	"orphanage-service/internal/handler"
	mid "orphanage-service/internal/middleware"
	"orphanage-service/internal/repository"
	"orphanage-service/internal/upload"
	"orphanage-service/internal/view"
	"orphanage-service/pkg/config"
	"orphanage-service/pkg/database"
	"orphanage-service/pkg/logger"
	"orphanage-service/prometheus"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load configuration from .env file and environment variables
	appConfig, err := config.Load()
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	logger.InitLogger(appConfig)
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting orphanage-service",
		zap.String("environment", appConfig.Server.Env),
		zap.String("port", appConfig.Server.Port))

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Initialize database (runs migrations)
	if err := database.InitDB(appConfig); err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	// Initialize upload storage
	uploads, err := upload.NewLocalStore(appConfig.Upload.Dir)
	if err != nil {
		log.Fatal("Failed to initialize upload storage", zap.Error(err))
	}
	log.Info("Upload storage ready", zap.String("dir", uploads.Dir()))

	repo := repository.NewOrphanageRepository(database.GetDB())
	renderer := view.NewRenderer(appConfig.App.URL)
	orphanages := handler.NewOrphanageHandler(repo, uploads, renderer)

	// Initialize Echo instance
	e := echo.New()

	// Middleware - order matters
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit(strconv.FormatInt(appConfig.Upload.MaxSize, 10)))
	e.Use(mid.RequestIDMiddleware)
	e.Use(logger.Middleware(log))
	e.Use(mid.MetricsMiddleware)

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Stored image files are served back under /uploads
	e.Static("/uploads", uploads.Dir())

	// Orphanage API routes
	orphanages.Register(e)

	// Start server with explicit timeouts
	e.Server.ReadTimeout = appConfig.Server.ReadTimeout
	e.Server.WriteTimeout = appConfig.Server.WriteTimeout

	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
