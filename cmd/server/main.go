package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"

	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/cache"
	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/catalog"
	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/daily"
	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/logging"
	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/metrics"
	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/progress"
	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/routes"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	cfg := config.Load()

	// Structured logging (JSON to stdout)
	logging.Setup(cfg.AppEnv)

	if cfg.DBDriver == "postgres" && cfg.DBPassword == "" {
		slog.Error("DB_PASSWORD environment variable is required")
		os.Exit(1)
	}

	// Database
	db, err := database.Connect(cfg)
	if err != nil {
		slog.Error("database connection failed", "driver", cfg.DBDriver, "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(db); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	// Database log handler (ERROR+ async batch)
	dbLogHandler := logging.NewPGHandler(db)
	slog.SetDefault(slog.New(logging.NewMultiHandler(
		logging.NewJSONHandler(os.Stdout, cfg.AppEnv),
		dbLogHandler,
	)))

	cleanupDone := make(chan struct{})
	logging.StartCleanup(db, cfg.LogRetentionDays, cleanupDone)

	// Catalog, optionally behind Redis
	store := catalog.NewStore(db)
	var gameCache *cache.GameCache
	if cfg.RedisURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		gameCache, err = cache.New(ctx, cfg.RedisURL, cfg.CacheTTL)
		cancel()
		if err != nil {
			slog.Warn("redis unavailable, serving games from the database only", "error", err)
			gameCache = nil
		} else {
			store.WithCache(gameCache)
			slog.Info("game cache enabled", "ttl", cfg.CacheTTL.String())
		}
	}

	if cfg.SeedOnStartup {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		_, err := catalog.Seed(ctx, store, catalog.DefaultGames)
		cancel()
		if err != nil {
			slog.Error("catalog seed failed", "action", "catalog_seed", "error", err)
			os.Exit(1)
		}
	}

	// Services
	selector := daily.NewSelector(store)
	ledger := progress.NewLedger(db)

	// Handlers
	var healthCache handlers.Pinger
	if gameCache != nil {
		healthCache = gameCache
	}
	healthHandler := handlers.NewHealthHandler(db, healthCache)
	gameHandler := handlers.NewGameHandler(store, selector)
	progressHandler := handlers.NewProgressHandler(ledger, store)

	// Sentry error tracking
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      cfg.AppEnv,
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${locals:requestid}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		return c.Next()
	})
	if cfg.MetricsEnabled {
		app.Use(metrics.Middleware())
	}

	routes.Setup(app, cfg, healthHandler, gameHandler, progressHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.AppEnv, "db_driver", cfg.DBDriver)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	close(cleanupDone)
	dbLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if gameCache != nil {
		if err := gameCache.Close(); err != nil {
			slog.Error("redis close error", "error", err)
		}
	}
	if err := database.Close(db); err != nil {
		slog.Error("database close error", "error", err)
	}

	slog.Info("server stopped")
}
