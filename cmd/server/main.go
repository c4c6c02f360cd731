package main

import (
	"os"
	"os/signal"
	"syscall"

	"prenderia/internal/adapters/http/middleware"
	"prenderia/internal/adapters/http/routes"
	"prenderia/internal/adapters/persistence/models"
	"prenderia/internal/config"
	"prenderia/internal/core/services"
	"prenderia/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	_ "prenderia/docs" // Swagger docs
)

// @title Prendería API
// @version 1.0
// @description Administración de préstamos prendarios: usuarios, empeños, préstamos e intereses.

// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.ForMode("dev", "").Fatal("failed to load configuration", zap.Error(err))
	}

	log := logger.ForMode(cfg.AppMode, cfg.LogLevel)
	defer func() { _ = log.Sync() }()
	log.Info("configuration loaded", zap.String("mode", cfg.AppMode))

	db, err := config.ConnectDatabase(cfg, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer config.CloseDatabase()

	if err := models.AutoMigrate(db); err != nil {
		log.Fatal("failed to auto migrate", zap.Error(err))
	}
	log.Info("database migration completed")

	if err := config.NewSeeder(db, cfg.Seed, log).Run(); err != nil {
		log.Warn("failed to seed database", zap.Error(err))
	}

	svc := routes.NewServices(db, cfg, log)

	if cfg.Reconcile.Enabled {
		reconciler, err := services.NewReconciler(svc.Prestamo, cfg.Reconcile.Schedule, log)
		if err != nil {
			log.Fatal("invalid RECONCILE_CRON", zap.String("schedule", cfg.Reconcile.Schedule), zap.Error(err))
		}
		reconciler.Start()
		defer reconciler.Stop()
	}

	app := fiber.New(fiber.Config{
		AppName:      "Prendería API v1.0",
		ErrorHandler: middleware.ErrorHandler(log),
	})

	middleware.Setup(app, cfg)
	routes.Setup(app, svc, cfg, config.HealthCheck)

	go gracefulShutdown(app, log)

	log.Info("server starting", zap.String("port", cfg.Port), zap.String("mode", cfg.AppMode))
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Error("server stopped with error", zap.Error(err))
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App, log *zap.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		log.Error("error during shutdown", zap.Error(err))
	}
	log.Info("server stopped gracefully")
}
