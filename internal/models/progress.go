package models

import (
	"time"

	"gorm.io/datatypes"
)

// DateLayout is the calendar-day format used for daily dates.
const DateLayout = "2006-01-02"

// Score is the result of one completion. It is exposed as "bestScore" on the
// wire but always holds the most recent completion, not the best one.
type Score struct {
	Mistakes    int `json:"mistakes"`
	HintsUsed   int `json:"hintsUsed"`
	TimeSeconds int `json:"timeSeconds"`
}

// Perfect reports a completion with no mistakes and no hints.
func (s Score) Perfect() bool {
	return s.Mistakes == 0 && s.HintsUsed == 0
}

type GameProgressEntry struct {
	Completed bool   `json:"completed"`
	Attempts  int    `json:"attempts"`
	BestScore *Score `json:"bestScore,omitempty"`
}

type LevelProgress struct {
	CompletedGames int                          `json:"completedGames"`
	PerfectGames   int                          `json:"perfectGames"`
	Games          map[string]GameProgressEntry `json:"games"`
}

type DailyLevelProgress struct {
	CompletedToday    bool                         `json:"completedToday"`
	CurrentStreak     int                          `json:"currentStreak"`
	LongestStreak     int                          `json:"longestStreak"`
	TotalCompleted    int                          `json:"totalCompleted"`
	LastCompletedDate *string                      `json:"lastCompletedDate"`
	Games             map[string]GameProgressEntry `json:"games"`
}

type DailyProgress struct {
	Easy   DailyLevelProgress `json:"easy"`
	Medium DailyLevelProgress `json:"medium"`
	Hard   DailyLevelProgress `json:"hard"`
	Youth  DailyLevelProgress `json:"youth"`
}

// UserProgress is the per-user progress document. Each level and the daily
// block are stored as JSON columns; Version guards concurrent writers.
type UserProgress struct {
	UserID    string                            `gorm:"primaryKey;size:128" json:"userId"`
	Easy      datatypes.JSONType[LevelProgress] `json:"easy"`
	Medium    datatypes.JSONType[LevelProgress] `json:"medium"`
	Hard      datatypes.JSONType[LevelProgress] `json:"hard"`
	Youth     datatypes.JSONType[LevelProgress] `json:"youth"`
	Daily     datatypes.JSONType[DailyProgress] `json:"daily"`
	Version   int64                             `gorm:"not null;default:0" json:"-"`
	CreatedAt time.Time                         `json:"createdAt"`
	UpdatedAt time.Time                         `json:"updatedAt"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}

// NewUserProgress returns a document with every counter at zero.
func NewUserProgress(userID string, now time.Time) *UserProgress {
	p := &UserProgress{
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, l := range Levels {
		p.SetLevel(l, LevelProgress{})
		p.SetDaily(l, DailyLevelProgress{})
	}
	return p
}

// Level returns a copy of the regular progress for l with a non-nil games map.
func (p *UserProgress) Level(l Level) LevelProgress {
	var lp LevelProgress
	switch l {
	case LevelEasy:
		lp = p.Easy.Data()
	case LevelMedium:
		lp = p.Medium.Data()
	case LevelHard:
		lp = p.Hard.Data()
	case LevelYouth:
		lp = p.Youth.Data()
	}
	if lp.Games == nil {
		lp.Games = map[string]GameProgressEntry{}
	}
	return lp
}

func (p *UserProgress) SetLevel(l Level, lp LevelProgress) {
	if lp.Games == nil {
		lp.Games = map[string]GameProgressEntry{}
	}
	v := datatypes.NewJSONType(lp)
	switch l {
	case LevelEasy:
		p.Easy = v
	case LevelMedium:
		p.Medium = v
	case LevelHard:
		p.Hard = v
	case LevelYouth:
		p.Youth = v
	}
}

// DailyLevel returns a copy of the daily progress for l with a non-nil games map.
func (p *UserProgress) DailyLevel(l Level) DailyLevelProgress {
	d := p.Daily.Data()
	var dp DailyLevelProgress
	switch l {
	case LevelEasy:
		dp = d.Easy
	case LevelMedium:
		dp = d.Medium
	case LevelHard:
		dp = d.Hard
	case LevelYouth:
		dp = d.Youth
	}
	if dp.Games == nil {
		dp.Games = map[string]GameProgressEntry{}
	}
	return dp
}

func (p *UserProgress) SetDaily(l Level, dp DailyLevelProgress) {
	if dp.Games == nil {
		dp.Games = map[string]GameProgressEntry{}
	}
	d := p.Daily.Data()
	switch l {
	case LevelEasy:
		d.Easy = dp
	case LevelMedium:
		d.Medium = dp
	case LevelHard:
		d.Hard = dp
	case LevelYouth:
		d.Youth = dp
	}
	p.Daily = datatypes.NewJSONType(d)
}

// Normalize replaces nil games maps left by older rows so the wire shape is stable.
func (p *UserProgress) Normalize() {
	for _, l := range Levels {
		p.SetLevel(l, p.Level(l))
		p.SetDaily(l, p.DailyLevel(l))
	}
}
