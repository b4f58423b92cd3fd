package handlers

import (
	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/catalog"
	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/identity"
	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/progress"
	"github.com/gofiber/fiber/v2"
)

type ProgressHandler struct {
	ledger *progress.Ledger
	store  *catalog.Store
}

func NewProgressHandler(ledger *progress.Ledger, store *catalog.Store) *ProgressHandler {
	return &ProgressHandler{ledger: ledger, store: store}
}

func (h *ProgressHandler) GetProgress(c *fiber.Ctx) error {
	p, err := h.ledger.Get(c.UserContext(), identity.GetUserID(c))
	if err != nil {
		return err
	}
	return c.JSON(p)
}

// RecordGame records a catalog game completion. The level is taken from the
// stored game, not from the client.
func (h *ProgressHandler) RecordGame(c *fiber.Ctx) error {
	var req dto.GameCompletionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if req.GameID == "" {
		return toHTTPError(progress.ErrMissingGameID)
	}
	score, err := req.Score()
	if err != nil {
		return toHTTPError(err)
	}

	game, err := h.store.Get(c.UserContext(), req.GameID)
	if err != nil {
		return toHTTPError(err)
	}

	p, err := h.ledger.RecordGameCompletion(c.UserContext(), identity.GetUserID(c), game.Level, game.ID, score)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(dto.ProgressResponse{Success: true, Progress: p})
}

func (h *ProgressHandler) RecordDaily(c *fiber.Ctx) error {
	var req dto.DailyCompletionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	level, err := models.ParseLevel(req.Level)
	if err != nil {
		return toHTTPError(err)
	}
	score, err := req.Score()
	if err != nil {
		return toHTTPError(err)
	}

	p, err := h.ledger.RecordDailyCompletion(c.UserContext(), identity.GetUserID(c), level, req.GameID, score)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(dto.ProgressResponse{Success: true, Progress: p})
}

func (h *ProgressHandler) GetStats(c *fiber.Ctx) error {
	p, err := h.ledger.Get(c.UserContext(), identity.GetUserID(c))
	if err != nil {
		return err
	}
	return c.JSON(progress.Summarize(p))
}
