package handlers

import (
	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/catalog"
	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/daily"
	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/models"
	"github.com/gofiber/fiber/v2"
)

type GameHandler struct {
	store    *catalog.Store
	selector *daily.Selector
}

func NewGameHandler(store *catalog.Store, selector *daily.Selector) *GameHandler {
	return &GameHandler{store: store, selector: selector}
}

// ListLevels returns every level keyed by name with its catalog games.
func (h *GameHandler) ListLevels(c *fiber.Ctx) error {
	levels, err := h.store.ListLevels(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(levels)
}

func (h *GameHandler) ListByLevel(c *fiber.Ctx) error {
	level, err := models.ParseLevel(c.Params("levelKey"))
	if err != nil {
		return toHTTPError(err)
	}

	games, err := h.store.ListByLevel(c.UserContext(), level)
	if err != nil {
		return err
	}
	return c.JSON(dto.LevelGamesResponse{
		Level:       level,
		Title:       level.Title(),
		Description: level.Description(),
		Games:       games,
	})
}

// GetDaily returns today's game for the level. An optional ?date=YYYY-MM-DD
// selects another day.
func (h *GameHandler) GetDaily(c *fiber.Ctx) error {
	level, err := models.ParseLevel(c.Params("level"))
	if err != nil {
		return toHTTPError(err)
	}

	var game *models.Game
	if date := c.Query("date"); date != "" {
		game, err = h.selector.GetDailyGame(c.UserContext(), level, date)
	} else {
		game, err = h.selector.GetTodayGame(c.UserContext(), level)
	}
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(game)
}

func (h *GameHandler) GetGame(c *fiber.Ctx) error {
	game, err := h.store.Get(c.UserContext(), c.Params("gameId"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(game)
}
