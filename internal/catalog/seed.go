package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/models"
	"github.com/google/uuid"
)

// GameDefinition is the authoring shape of a catalog game, used by the seed
// data and by JSON import files.
type GameDefinition struct {
	Level  models.Level       `json:"level"`
	Title  string             `json:"title"`
	Words  []string           `json:"words"`
	Groups []models.GameGroup `json:"groups"`
}

// NewGame builds a catalog game with a fresh id. It does not validate.
func (d GameDefinition) NewGame(now time.Time) *models.Game {
	return &models.Game{
		ID:        uuid.NewString(),
		Level:     d.Level,
		Title:     d.Title,
		Words:     d.Words,
		Groups:    d.Groups,
		CreatedAt: now,
	}
}

// Seed loads defs into an empty catalog. It does nothing when any game is
// already stored, so it is safe to run on every start.
func Seed(ctx context.Context, store *Store, defs []GameDefinition) (int, error) {
	existing, err := store.Count(ctx)
	if err != nil {
		return 0, err
	}
	if existing > 0 {
		slog.Info("catalog already seeded, skipping", "games", existing)
		return 0, nil
	}

	slog.Info("seeding catalog", "games", len(defs))
	now := time.Now().UTC()
	for i, def := range defs {
		// Spread creation times so listing order follows definition order.
		game := def.NewGame(now.Add(time.Duration(i) * time.Millisecond))
		if err := store.Create(ctx, game); err != nil {
			return i, fmt.Errorf("seed game %d (%s): %w", i, def.Title, err)
		}
	}

	slog.Info("catalog seeded", "games", len(defs))
	return len(defs), nil
}

// ImportResult reports what happened to one game of an import batch.
type ImportResult struct {
	Title string
	Level models.Level
	ID    string
	Err   error
}

// Import validates and stores every definition, continuing past failures.
func Import(ctx context.Context, store *Store, defs []GameDefinition) []ImportResult {
	results := make([]ImportResult, 0, len(defs))
	now := time.Now().UTC()
	for i, def := range defs {
		game := def.NewGame(now.Add(time.Duration(i) * time.Millisecond))
		res := ImportResult{Title: def.Title, Level: def.Level, ID: game.ID}
		if err := store.Create(ctx, game); err != nil {
			res.ID = ""
			res.Err = err
			slog.Error("catalog import failed", "action", "catalog_import", "title", def.Title, "level", string(def.Level), "error", err)
		}
		results = append(results, res)
	}
	return results
}

// ValidateDefinitions checks every definition without touching storage.
func ValidateDefinitions(defs []GameDefinition) []error {
	var errs []error
	for i, def := range defs {
		if err := def.NewGame(time.Time{}).Validate(); err != nil {
			errs = append(errs, fmt.Errorf("game %d (%s): %w", i, def.Title, err))
		}
	}
	return errs
}

// DecodeDefinitions reads a JSON array of game definitions. Unknown fields
// are rejected.
func DecodeDefinitions(r io.Reader) ([]GameDefinition, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var defs []GameDefinition
	if err := dec.Decode(&defs); err != nil {
		return nil, fmt.Errorf("failed to decode game definitions: %w", err)
	}
	return defs, nil
}
