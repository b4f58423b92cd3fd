package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validGame() *Game {
	return &Game{
		ID:    "g1",
		Level: LevelEasy,
		Title: "Home and Family",
		Words: []string{"MOM", "DAD", "BABY", "SISTER", "BED", "CHAIR", "TABLE", "LAMP",
			"HAPPY", "SAD", "MAD", "GLAD", "HOT", "COLD", "WET", "DRY"},
		Groups: []GameGroup{
			{Category: "Family", Words: []string{"MOM", "DAD", "BABY", "SISTER"}, Difficulty: 1},
			{Category: "Furniture", Words: []string{"BED", "CHAIR", "TABLE", "LAMP"}, Difficulty: 2},
			{Category: "Feelings", Words: []string{"HAPPY", "SAD", "MAD", "GLAD"}, Difficulty: 3},
			{Category: "Opposites", Words: []string{"HOT", "COLD", "WET", "DRY"}, Difficulty: 4},
		},
	}
}

func TestGameValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(g *Game)
		wantErr string
	}{
		{name: "valid", mutate: func(g *Game) {}},
		{name: "bad level", mutate: func(g *Game) { g.Level = "expert" }, wantErr: "level"},
		{name: "missing title", mutate: func(g *Game) { g.Title = "" }, wantErr: "title"},
		{name: "fifteen words", mutate: func(g *Game) { g.Words = g.Words[:15] }, wantErr: "15 words"},
		{name: "three groups", mutate: func(g *Game) { g.Groups = g.Groups[:3] }, wantErr: "3 groups"},
		{name: "duplicate word", mutate: func(g *Game) { g.Words[1] = "MOM" }, wantErr: "repeats word"},
		{name: "difficulty reused", mutate: func(g *Game) { g.Groups[3].Difficulty = 1 }, wantErr: "used twice"},
		{name: "difficulty out of range", mutate: func(g *Game) { g.Groups[0].Difficulty = 5 }, wantErr: "out of range"},
		{name: "group word not in game", mutate: func(g *Game) { g.Groups[0].Words[0] = "AUNT" }, wantErr: "missing from game words"},
		{name: "short group", mutate: func(g *Game) { g.Groups[1].Words = g.Groups[1].Words[:3] }, wantErr: "has 3 words"},
		{name: "word in two groups", mutate: func(g *Game) {
			g.Groups[1].Words = []string{"MOM", "CHAIR", "TABLE", "LAMP"}
		}, wantErr: "more than one group"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := validGame()
			tt.mutate(g)
			err := g.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidGame)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDailyCopy(t *testing.T) {
	src := validGame()
	now := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	daily := src.DailyCopy("daily-easy-2024-03-01", "2024-03-01", now)

	assert.Equal(t, "daily-easy-2024-03-01", daily.ID)
	assert.Equal(t, "Daily Home and Family", daily.Title)
	assert.True(t, daily.IsDaily)
	require.NotNil(t, daily.DailyDate)
	assert.Equal(t, "2024-03-01", *daily.DailyDate)
	require.NotNil(t, daily.SourceGameID)
	assert.Equal(t, "g1", *daily.SourceGameID)
	assert.NoError(t, daily.Validate())

	daily.Groups[0].Words[0] = "CHANGED"
	assert.Equal(t, "MOM", src.Groups[0].Words[0], "copy must not share group slices")
}

func TestParseLevel(t *testing.T) {
	for _, l := range Levels {
		got, err := ParseLevel(string(l))
		require.NoError(t, err)
		assert.Equal(t, l, got)
	}

	_, err := ParseLevel("EASY")
	assert.ErrorIs(t, err, ErrInvalidLevel)
	_, err = ParseLevel("")
	assert.ErrorIs(t, err, ErrInvalidLevel)

	assert.Equal(t, "Hard Level (Grades 5-6)", LevelHard.Title())
	assert.Equal(t, "Unknown Level", Level("x").Title())
}
