package catalog

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { database.Close(db) })
	return db
}

type memoryCache struct {
	mu    sync.Mutex
	games map[string]*models.Game
	hits  int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{games: map[string]*models.Game{}}
}

func (c *memoryCache) GetGame(_ context.Context, id string) (*models.Game, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	g, ok := c.games[id]
	if ok {
		c.hits++
	}
	return g, ok
}

func (c *memoryCache) SetGame(_ context.Context, game *models.Game) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.games[game.ID] = game
}

func TestDefaultGamesAreValid(t *testing.T) {
	assert.Empty(t, ValidateDefinitions(DefaultGames))

	perLevel := map[models.Level]int{}
	for _, def := range DefaultGames {
		perLevel[def.Level]++

		game := def.NewGame(time.Now())
		seen := map[string]bool{}
		difficulties := map[int]bool{}
		for _, grp := range game.Groups {
			difficulties[grp.Difficulty] = true
			for _, w := range grp.Words {
				seen[w] = true
			}
		}
		assert.Len(t, game.Words, models.WordsPerGame, def.Title)
		assert.Len(t, game.Groups, models.GroupsPerGame, def.Title)
		assert.Len(t, seen, models.WordsPerGame, def.Title)
		assert.Equal(t, map[int]bool{1: true, 2: true, 3: true, 4: true}, difficulties, def.Title)
	}
	for _, l := range models.Levels {
		assert.Positive(t, perLevel[l], "level %s has no starter games", l)
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewStore(openTestDB(t))

	n, err := Seed(ctx, store, DefaultGames)
	require.NoError(t, err)
	assert.Equal(t, len(DefaultGames), n)

	n, err = Seed(ctx, store, DefaultGames)
	require.NoError(t, err)
	assert.Zero(t, n)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(DefaultGames)), count)
}

func TestListByLevelExcludesDailyGames(t *testing.T) {
	ctx := context.Background()
	store := NewStore(openTestDB(t))
	_, err := Seed(ctx, store, DefaultGames)
	require.NoError(t, err)

	easy, err := store.ListByLevel(ctx, models.LevelEasy)
	require.NoError(t, err)
	require.NotEmpty(t, easy)
	assert.Equal(t, "Colors and Shapes", easy[0].Title)

	daily := easy[0].DailyCopy("daily-easy-2024-03-01", "2024-03-01", time.Now())
	created, err := store.InsertIfAbsent(ctx, daily)
	require.NoError(t, err)
	assert.True(t, created)

	again, err := store.ListByLevel(ctx, models.LevelEasy)
	require.NoError(t, err)
	assert.Len(t, again, len(easy))
	for _, g := range again {
		assert.False(t, g.IsDaily)
	}
}

func TestListLevels(t *testing.T) {
	ctx := context.Background()
	store := NewStore(openTestDB(t))
	_, err := Seed(ctx, store, DefaultGames)
	require.NoError(t, err)

	levels, err := store.ListLevels(ctx)
	require.NoError(t, err)
	require.Len(t, levels, 4)
	assert.Equal(t, "Youth Level (Grade 6+)", levels[models.LevelYouth].Title)
	assert.Equal(t, "Simple patterns and categories", levels[models.LevelEasy].Description)
	assert.NotEmpty(t, levels[models.LevelHard].Games)
}

func TestGet(t *testing.T) {
	ctx := context.Background()
	store := NewStore(openTestDB(t))

	game := DefaultGames[0].NewGame(time.Now().UTC())
	require.NoError(t, store.Create(ctx, game))

	got, err := store.Get(ctx, game.ID)
	require.NoError(t, err)
	assert.Equal(t, game.Title, got.Title)
	assert.Equal(t, []string(game.Words), []string(got.Words))
	assert.Equal(t, game.Groups[3].Words, got.Groups[3].Words)

	_, err = store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrGameNotFound)
}

func TestGetReadsThroughCache(t *testing.T) {
	ctx := context.Background()
	cache := newMemoryCache()
	store := NewStore(openTestDB(t)).WithCache(cache)

	game := DefaultGames[1].NewGame(time.Now().UTC())
	require.NoError(t, store.Create(ctx, game))

	_, err := store.Get(ctx, game.ID)
	require.NoError(t, err)
	assert.Zero(t, cache.hits)

	got, err := store.Get(ctx, game.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.hits)
	assert.Equal(t, game.Title, got.Title)
}

func TestCreateRejectsInvalidGame(t *testing.T) {
	store := NewStore(openTestDB(t))

	def := DefaultGames[0]
	def.Words = def.Words[:15]
	err := store.Create(context.Background(), def.NewGame(time.Now()))
	assert.ErrorIs(t, err, models.ErrInvalidGame)
}

func TestInsertIfAbsent(t *testing.T) {
	ctx := context.Background()
	store := NewStore(openTestDB(t))
	base := DefaultGames[4].NewGame(time.Now().UTC())

	first := base.DailyCopy("daily-medium-2024-05-05", "2024-05-05", time.Now().UTC())
	created, err := store.InsertIfAbsent(ctx, first)
	require.NoError(t, err)
	assert.True(t, created)

	second := base.DailyCopy("daily-medium-2024-05-05", "2024-05-05", time.Now().UTC())
	second.Title = "Someone else"
	created, err = store.InsertIfAbsent(ctx, second)
	require.NoError(t, err)
	assert.False(t, created)

	stored, err := store.Get(ctx, "daily-medium-2024-05-05")
	require.NoError(t, err)
	assert.Equal(t, "Daily Science and Nature", stored.Title)
}

func TestImportContinuesPastInvalidGames(t *testing.T) {
	ctx := context.Background()
	store := NewStore(openTestDB(t))

	broken := DefaultGames[2]
	broken.Title = "Broken"
	broken.Groups = broken.Groups[:3]

	results := Import(ctx, store, []GameDefinition{DefaultGames[0], broken, DefaultGames[7]})
	require.Len(t, results, 3)
	assert.NoError(t, results[0].Err)
	assert.NotEmpty(t, results[0].ID)
	assert.ErrorIs(t, results[1].Err, models.ErrInvalidGame)
	assert.Empty(t, results[1].ID)
	assert.NoError(t, results[2].Err)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestDecodeDefinitions(t *testing.T) {
	defs, err := DecodeDefinitions(strings.NewReader(`[
		{"level": "easy", "title": "T", "words": ["a"], "groups": [{"category": "c", "words": ["a"], "difficulty": 1}]}
	]`))
	require.NoError(t, err)
	require.Len(t, defs, 1)
	assert.Equal(t, models.LevelEasy, defs[0].Level)
	assert.Equal(t, 1, defs[0].Groups[0].Difficulty)

	_, err = DecodeDefinitions(strings.NewReader(`[{"level": "easy", "name": "typo"}]`))
	assert.Error(t, err)

	_, err = DecodeDefinitions(strings.NewReader(`{"level": "easy"}`))
	assert.Error(t, err)
}
