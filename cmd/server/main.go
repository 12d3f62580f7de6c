package main

import (
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"

	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/logging"
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/repository"
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/routes"
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	cfg := config.Load()

	// Structured logging (JSON to stdout)
	logging.Setup(cfg.LogLevel)

	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}

	// Backing store
	store, err := database.Open(cfg)
	if err != nil {
		slog.Error("backing store connection failed", "backend", cfg.StoreBackend, "error", err)
		os.Exit(1)
	}
	repo := repository.New(store)

	// ERROR+ records also go to the store's log ring
	systemLogs := repository.NewSystemLogStore(repo)
	storeLogHandler := logging.NewStoreHandler(systemLogs)
	logging.Setup(cfg.LogLevel, storeLogHandler)

	// Log cleanup (retention window)
	cleanup, err := logging.StartCleanup(systemLogs, cfg.LogRetentionDays)
	if err != nil {
		slog.Error("log cleanup scheduling failed", "error", err)
		os.Exit(1)
	}

	// Services
	clock := services.SystemClock(cfg.Location())
	community := services.NewCommunityService(repo, services.NewContentFilter(cfg.BannedWords), clock)
	directory := services.NewDirectoryService(repo, community, cfg, clock)
	dailyLogs := services.NewDailyLogService(repo, clock)
	moderation := services.NewModerationService(community)
	platform := services.NewPlatformService(repo, clock)
	preferences := services.NewPreferenceService(repo)
	tokens := services.NewTokenService(cfg, clock)
	verifier := services.NewIdentityVerifier(cfg)

	// Handlers
	h := routes.Handlers{
		Auth:       handlers.NewAuthHandler(directory, tokens, verifier),
		Health:     handlers.NewHealthHandler(store, cfg.StoreBackend),
		Profile:    handlers.NewProfileHandler(directory),
		Logs:       handlers.NewLogHandler(dailyLogs),
		Preference: handlers.NewPreferenceHandler(preferences),
		Community:  handlers.NewCommunityHandler(community),
		Moderation: handlers.NewModerationHandler(directory, community, moderation, platform),
	}

	// Sentry error tracking
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      cfg.Environment,
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    4 * 1024 * 1024,
		ErrorHandler: customErrorHandler,
	})

	// Sentry middleware
	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		return c.Next()
	})

	// Routes
	routes.Setup(app, cfg, directory, h)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port, "backend", cfg.StoreBackend)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	<-cleanup.Stop().Done()
	storeLogHandler.Stop()
	storeLogHandler.Flush()
	sentry.Flush(2 * time.Second)

	if err := store.Close(); err != nil {
		slog.Error("backing store close error", "error", err)
	}

	slog.Info("server stopped")
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
