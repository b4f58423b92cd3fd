package routes

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	healthHandler *handlers.HealthHandler,
	gameHandler *handlers.GameHandler,
	progressHandler *handlers.ProgressHandler,
) {
	if cfg.MetricsEnabled {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	}

	api := app.Group("/api")

	// Per-IP rate limit; 0 disables it.
	if cfg.RateLimitPerMinute > 0 {
		api.Use(limiter.New(limiter.Config{
			Max:               cfg.RateLimitPerMinute,
			Expiration:        1 * time.Minute,
			LimiterMiddleware: limiter.SlidingWindow{},
			KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
		}))
	}

	api.Get("/", healthHandler.Root)
	api.Get("/health", healthHandler.Check)

	api.Use(middleware.Identity())

	// Games: fixed paths before the :gameId catch-all
	games := api.Group("/games")
	games.Get("/levels", gameHandler.ListLevels)
	games.Get("/level/:levelKey", gameHandler.ListByLevel)
	games.Get("/daily/:level", gameHandler.GetDaily)
	games.Get("/:gameId", gameHandler.GetGame)

	// Progress, keyed by X-User-Id
	api.Get("/progress", progressHandler.GetProgress)
	api.Post("/progress/game", progressHandler.RecordGame)
	api.Post("/progress/daily", progressHandler.RecordDaily)

	api.Get("/stats/user", progressHandler.GetStats)
}
