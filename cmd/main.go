package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rizqunbw/rizqu-moneytracker/config"
	"github.com/rizqunbw/rizqu-moneytracker/internal/auth/handler"
	"github.com/rizqunbw/rizqu-moneytracker/internal/auth/repository/script"
	"github.com/rizqunbw/rizqu-moneytracker/internal/auth/service"
	"github.com/rizqunbw/rizqu-moneytracker/internal/ledger"
	"github.com/rizqunbw/rizqu-moneytracker/internal/logging"
	"github.com/rizqunbw/rizqu-moneytracker/internal/observability/metrics"
	"github.com/rizqunbw/rizqu-moneytracker/internal/observability/middleware"
)

func main() {
	cfg := config.Load()

	logger := logging.NewLogger(logging.Config{
		ServiceName: "moneytracker-api",
		Environment: cfg.Env,
		Level:       cfg.LogLevel,
	})

	metrics.MustRegister()

	upstreamTimeout := time.Duration(cfg.UpstreamTimeoutSec) * time.Second

	directory := script.NewRepository(func() string {
		return cfg.AdminScriptURL
	}, upstreamTimeout, logger)

	tokens := service.NewTokenService(cfg.AdminTokenSecret, cfg.AdminTokenExpiryMin)
	users := service.NewUserService(directory, tokens)
	databases := service.NewDatabaseService(directory, tokens, service.Policy{
		MaxDatabases:      cfg.MaxDatabases,
		MaxScriptURLEdits: cfg.MaxScriptURLEdits,
	})
	admin := service.NewAdminService(directory, tokens, cfg.AdminPasswordHash)

	authHandler := handler.NewAuthHandler(users, databases)
	adminHandler := handler.NewAdminHandler(admin, tokens)
	ledgerHandler := ledger.NewHandler(ledger.NewClient(upstreamTimeout, logger))

	app := fiber.New(fiber.Config{
		AppName: "moneytracker-api",
	})

	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(logger))
	app.Use(middleware.Metrics())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	handler.RegisterRoutes(app, authHandler, adminHandler, ledgerHandler)

	logger.Info("starting server", slog.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}
