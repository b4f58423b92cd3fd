package daily

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/catalog"
	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/metrics"
	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/models"
	"github.com/cespare/xxhash/v2"
)

var (
	ErrNoGamesAvailable = errors.New("no games available for level")
	ErrInvalidDate      = errors.New("invalid date, expected YYYY-MM-DD")
	ErrDailyIDConflict  = errors.New("daily game id is taken by a non-daily game")
)

// Today returns the UTC calendar date of t in YYYY-MM-DD form.
func Today(t time.Time) string {
	return t.UTC().Format(models.DateLayout)
}

// GameID is the id a daily game for level and date is stored under. It is the
// uniqueness key that makes concurrent first requests converge on one row.
func GameID(level models.Level, date string) string {
	return fmt.Sprintf("daily-%s-%s", level, date)
}

// Pick returns the index of the candidate chosen for date and level out of n
// candidates sorted by id. The hash is unseeded so every process agrees.
func Pick(date string, level models.Level, n int) int {
	if n <= 0 {
		return -1
	}
	return int(xxhash.Sum64String(date+string(level)) % uint64(n))
}

type Selector struct {
	store *catalog.Store
	now   func() time.Time
}

func NewSelector(store *catalog.Store) *Selector {
	return &Selector{store: store, now: time.Now}
}

func (s *Selector) WithClock(now func() time.Time) *Selector {
	s.now = now
	return s
}

// GetDailyGame returns the daily game for level on date, creating it from the
// level's catalog the first time it is asked for.
func (s *Selector) GetDailyGame(ctx context.Context, level models.Level, date string) (*models.Game, error) {
	if !level.Valid() {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidLevel, level)
	}
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	id := GameID(level, date)
	existing, err := s.store.Get(ctx, id)
	if err == nil {
		return checkDaily(existing)
	}
	if !errors.Is(err, catalog.ErrGameNotFound) {
		return nil, err
	}

	candidates, err := s.store.ListByLevel(ctx, level)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoGamesAvailable, level)
	}

	sort.Slice(candidates, func(i, j int) bool { return candidates[i].ID < candidates[j].ID })
	selected := candidates[Pick(date, level, len(candidates))]

	game := selected.DailyCopy(id, date, s.now().UTC())
	created, err := s.store.InsertIfAbsent(ctx, game)
	if err != nil {
		return nil, err
	}
	if created {
		metrics.DailyGamesMaterializedTotal.WithLabelValues(string(level)).Inc()
		slog.Info("daily game materialized", "level", string(level), "date", date, "game_id", id, "source_game_id", selected.ID)
		return game, nil
	}

	// Another request inserted it first; return the stored row.
	stored, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return checkDaily(stored)
}

func checkDaily(game *models.Game) (*models.Game, error) {
	if !game.IsDaily {
		return nil, fmt.Errorf("%w: %s", ErrDailyIDConflict, game.ID)
	}
	return game, nil
}

// GetTodayGame is GetDailyGame for the current UTC date.
func (s *Selector) GetTodayGame(ctx context.Context, level models.Level) (*models.Game, error) {
	return s.GetDailyGame(ctx, level, Today(s.now()))
}
