package models

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidLevel = errors.New("invalid level")

// Level is one of the four fixed difficulty tiers.
type Level string

const (
	LevelEasy   Level = "easy"
	LevelMedium Level = "medium"
	LevelHard   Level = "hard"
	LevelYouth  Level = "youth"
)

// Levels lists every level in the fixed order used for display and tie-breaks.
var Levels = []Level{LevelEasy, LevelMedium, LevelHard, LevelYouth}

var levelTitles = map[Level]string{
	LevelEasy:   "Easy Level (Grades 1-2)",
	LevelMedium: "Medium Level (Grades 3-4)",
	LevelHard:   "Hard Level (Grades 5-6)",
	LevelYouth:  "Youth Level (Grade 6+)",
}

var levelDescriptions = map[Level]string{
	LevelEasy:   "Simple patterns and categories",
	LevelMedium: "Pattern recognition and logical thinking",
	LevelHard:   "Complex associations and abstract thinking",
	LevelYouth:  "Advanced pattern recognition and critical thinking",
}

// ParseLevel accepts a level key exactly as it appears on the wire.
func ParseLevel(s string) (Level, error) {
	l := Level(s)
	if !l.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
	return l, nil
}

func (l Level) Valid() bool {
	_, ok := levelTitles[l]
	return ok
}

func (l Level) String() string { return string(l) }

func (l Level) Title() string {
	if t, ok := levelTitles[l]; ok {
		return t
	}
	return "Unknown Level"
}

func (l Level) Description() string {
	if d, ok := levelDescriptions[l]; ok {
		return d
	}
	return "Brain training challenges"
}

// LevelKeys returns the level keys joined for error messages.
func LevelKeys() string {
	keys := make([]string, len(Levels))
	for i, l := range Levels {
		keys[i] = string(l)
	}
	return strings.Join(keys, ", ")
}
