package handlers

import (
	"context"
	"log/slog"
	"time"

	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/dto"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Pinger is an optional dependency reported by the health check.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db    *gorm.DB
	cache Pinger
}

// NewHealthHandler builds the root and health handlers. cache may be nil.
func NewHealthHandler(db *gorm.DB, cache Pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(dto.RootResponse{
		Message:   "Brain Connections API is running",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	resp := dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		DB:        "ok",
	}
	if err := database.Ping(ctx, h.db); err != nil {
		resp.Status = "degraded"
		resp.DB = "unhealthy"
		slog.Error("database health check failed", "action", "health_check", "error", err)
	}
	if h.cache != nil {
		resp.Cache = "ok"
		if err := h.cache.Ping(ctx); err != nil {
			resp.Cache = "unhealthy"
			slog.Error("cache health check failed", "action", "health_check", "error", err)
		}
	}

	return c.JSON(resp)
}
