package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/catalog"
	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/models"
	"github.com/redis/go-redis/v9"
)

var _ catalog.Cache = (*GameCache)(nil)

// GameCache keeps game documents in Redis. Games never change after they are
// stored, so entries are only evicted by TTL.
type GameCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New connects to the Redis instance described by url (redis://host:port/db).
func New(ctx context.Context, url string, ttl time.Duration) (*GameCache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return NewWithClient(client, ttl), nil
}

func NewWithClient(client *redis.Client, ttl time.Duration) *GameCache {
	return &GameCache{client: client, ttl: ttl}
}

func gameKey(id string) string {
	return "connections:game:" + id
}

// GetGame returns the cached game. Redis failures are logged and reported as a miss.
func (c *GameCache) GetGame(ctx context.Context, id string) (*models.Game, bool) {
	data, err := c.client.Get(ctx, gameKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		slog.Warn("game cache read failed", "game_id", id, "error", err)
		return nil, false
	}

	var game models.Game
	if err := json.Unmarshal(data, &game); err != nil {
		slog.Warn("game cache entry corrupt", "game_id", id, "error", err)
		c.client.Del(ctx, gameKey(id))
		return nil, false
	}
	return &game, true
}

func (c *GameCache) SetGame(ctx context.Context, game *models.Game) {
	data, err := json.Marshal(game)
	if err != nil {
		slog.Warn("game cache encode failed", "game_id", game.ID, "error", err)
		return
	}
	if err := c.client.Set(ctx, gameKey(game.ID), data, c.ttl).Err(); err != nil {
		slog.Warn("game cache write failed", "game_id", game.ID, "error", err)
	}
}

func (c *GameCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *GameCache) Close() error {
	return c.client.Close()
}
