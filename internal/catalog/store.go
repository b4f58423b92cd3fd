package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrGameNotFound = errors.New("game not found")

// Cache is a read-through cache for immutable game documents.
type Cache interface {
	GetGame(ctx context.Context, id string) (*models.Game, bool)
	SetGame(ctx context.Context, game *models.Game)
}

// LevelCatalog is the listing of one level's catalog games.
type LevelCatalog struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Games       []models.Game `json:"games"`
}

type Store struct {
	db    *gorm.DB
	cache Cache
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// WithCache puts c in front of id lookups. A nil cache disables caching.
func (s *Store) WithCache(c Cache) *Store {
	s.cache = c
	return s
}

// ListByLevel returns the non-daily games for level in insertion order.
func (s *Store) ListByLevel(ctx context.Context, level models.Level) ([]models.Game, error) {
	games := []models.Game{}
	err := s.db.WithContext(ctx).
		Scopes(ForLevel(level), CatalogOnly).
		Order("created_at ASC, id ASC").
		Find(&games).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list %s games: %w", level, err)
	}
	return games, nil
}

// ListLevels returns every level with its title, description and games.
func (s *Store) ListLevels(ctx context.Context) (map[models.Level]LevelCatalog, error) {
	levels := make(map[models.Level]LevelCatalog, len(models.Levels))
	for _, l := range models.Levels {
		games, err := s.ListByLevel(ctx, l)
		if err != nil {
			return nil, err
		}
		levels[l] = LevelCatalog{
			Title:       l.Title(),
			Description: l.Description(),
			Games:       games,
		}
	}
	return levels, nil
}

// Get returns the game with the given id, daily or not.
func (s *Store) Get(ctx context.Context, id string) (*models.Game, error) {
	if s.cache != nil {
		if game, ok := s.cache.GetGame(ctx, id); ok {
			return game, nil
		}
	}

	var game models.Game
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&game).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrGameNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game %s: %w", id, err)
	}

	if s.cache != nil {
		s.cache.SetGame(ctx, &game)
	}
	return &game, nil
}

// Create validates and stores a new game.
func (s *Store) Create(ctx context.Context, game *models.Game) error {
	if err := game.Validate(); err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Create(game).Error; err != nil {
		return fmt.Errorf("failed to create game %q: %w", game.Title, err)
	}
	return nil
}

// InsertIfAbsent stores game unless a row with the same id already exists.
// The primary key decides the winner when several callers race on one id.
func (s *Store) InsertIfAbsent(ctx context.Context, game *models.Game) (bool, error) {
	if err := game.Validate(); err != nil {
		return false, err
	}
	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(game)
	if result.Error != nil {
		return false, fmt.Errorf("failed to insert game %s: %w", game.ID, result.Error)
	}
	return result.RowsAffected > 0, nil
}

// Count returns the number of stored games, daily ones included.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.Game{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count games: %w", err)
	}
	return n, nil
}
