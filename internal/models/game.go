package models

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
)

const (
	WordsPerGame  = 16
	GroupsPerGame = 4
	WordsPerGroup = 4
)

var ErrInvalidGame = errors.New("invalid game")

// GameGroup is one category of four words inside a game.
type GameGroup struct {
	Category   string   `json:"category"`
	Words      []string `json:"words"`
	Difficulty int      `json:"difficulty"`
}

// Game is a single puzzle. Catalog games are seeded or imported; daily games
// are materialized copies keyed by level and date.
type Game struct {
	ID           string                         `gorm:"primaryKey;size:128" json:"id"`
	Level        Level                          `gorm:"size:16;not null;index:idx_games_level_daily,priority:1" json:"level"`
	Title        string                         `gorm:"size:255;not null" json:"title"`
	Words        datatypes.JSONSlice[string]    `json:"words"`
	Groups       datatypes.JSONSlice[GameGroup] `json:"groups"`
	IsDaily      bool                           `gorm:"not null;index:idx_games_level_daily,priority:2" json:"isDaily"`
	DailyDate    *string                        `gorm:"size:10" json:"dailyDate"`
	SourceGameID *string                        `gorm:"size:128" json:"sourceGameId,omitempty"`
	CreatedAt    time.Time                      `json:"createdAt"`
}

// Validate checks the shape every stored game must have: 16 distinct words in
// four groups of four with difficulties 1 to 4.
func (g *Game) Validate() error {
	if !g.Level.Valid() {
		return fmt.Errorf("%w: level %q", ErrInvalidGame, g.Level)
	}
	if g.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidGame)
	}
	if len(g.Words) != WordsPerGame {
		return fmt.Errorf("%w: %q has %d words, want %d", ErrInvalidGame, g.Title, len(g.Words), WordsPerGame)
	}
	if len(g.Groups) != GroupsPerGame {
		return fmt.Errorf("%w: %q has %d groups, want %d", ErrInvalidGame, g.Title, len(g.Groups), GroupsPerGame)
	}

	words := make(map[string]bool, WordsPerGame)
	for _, w := range g.Words {
		if words[w] {
			return fmt.Errorf("%w: %q repeats word %q", ErrInvalidGame, g.Title, w)
		}
		words[w] = true
	}

	grouped := make(map[string]bool, WordsPerGame)
	difficulties := make(map[int]bool, GroupsPerGame)
	for _, grp := range g.Groups {
		if grp.Difficulty < 1 || grp.Difficulty > GroupsPerGame {
			return fmt.Errorf("%w: group %q difficulty %d out of range", ErrInvalidGame, grp.Category, grp.Difficulty)
		}
		if difficulties[grp.Difficulty] {
			return fmt.Errorf("%w: difficulty %d used twice", ErrInvalidGame, grp.Difficulty)
		}
		difficulties[grp.Difficulty] = true

		if len(grp.Words) != WordsPerGroup {
			return fmt.Errorf("%w: group %q has %d words, want %d", ErrInvalidGame, grp.Category, len(grp.Words), WordsPerGroup)
		}
		for _, w := range grp.Words {
			if !words[w] {
				return fmt.Errorf("%w: group %q word %q missing from game words", ErrInvalidGame, grp.Category, w)
			}
			if grouped[w] {
				return fmt.Errorf("%w: word %q appears in more than one group", ErrInvalidGame, w)
			}
			grouped[w] = true
		}
	}
	return nil
}

// DailyCopy returns the daily variant of a catalog game for the given date.
func (g *Game) DailyCopy(id, date string, now time.Time) *Game {
	words := make([]string, len(g.Words))
	copy(words, g.Words)

	groups := make([]GameGroup, len(g.Groups))
	for i, grp := range g.Groups {
		gw := make([]string, len(grp.Words))
		copy(gw, grp.Words)
		groups[i] = GameGroup{Category: grp.Category, Words: gw, Difficulty: grp.Difficulty}
	}

	sourceID := g.ID
	dailyDate := date
	return &Game{
		ID:           id,
		Level:        g.Level,
		Title:        "Daily " + g.Title,
		Words:        words,
		Groups:       groups,
		IsDaily:      true,
		DailyDate:    &dailyDate,
		SourceGameID: &sourceID,
		CreatedAt:    now,
	}
}
