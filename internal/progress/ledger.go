package progress

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/metrics"
	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const maxUpdateAttempts = 5

var (
	ErrConcurrentUpdate = errors.New("progress was modified concurrently, giving up")
	ErrInvalidScore     = errors.New("mistakes, hintsUsed and timeSeconds must not be negative")
	ErrMissingGameID    = errors.New("gameId is required")
)

// Ledger records completions into per-user progress documents.
type Ledger struct {
	db  *gorm.DB
	now func() time.Time
}

func NewLedger(db *gorm.DB) *Ledger {
	return &Ledger{db: db, now: time.Now}
}

// WithClock replaces the clock used to decide the current UTC day.
func (l *Ledger) WithClock(now func() time.Time) *Ledger {
	l.now = now
	return l
}

func (l *Ledger) today() (time.Time, string) {
	now := l.now().UTC()
	return now, now.Format(models.DateLayout)
}

// GetOrCreate returns the stored document for userID, inserting a zeroed one
// when the user has none. The stored values are returned as-is.
func (l *Ledger) GetOrCreate(ctx context.Context, userID string) (*models.UserProgress, error) {
	p, err := l.find(ctx, userID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load progress: %w", err)
	}

	now, _ := l.today()
	fresh := models.NewUserProgress(userID, now)
	err = l.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "user_id"}}, DoNothing: true}).
		Create(fresh).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create progress: %w", err)
	}

	p, err = l.find(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load progress: %w", err)
	}
	return p, nil
}

func (l *Ledger) find(ctx context.Context, userID string) (*models.UserProgress, error) {
	var p models.UserProgress
	if err := l.db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, err
	}
	p.Normalize()
	return &p, nil
}

// Get returns the user's progress as of today: completedToday and stale
// streaks reflect the current day even if nothing was written since.
func (l *Ledger) Get(ctx context.Context, userID string) (*models.UserProgress, error) {
	p, err := l.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	_, today := l.today()
	rolloverAll(p, today)
	return p, nil
}

// RecordGameCompletion records a completion of a catalog game.
func (l *Ledger) RecordGameCompletion(ctx context.Context, userID string, level models.Level, gameID string, score models.Score) (*models.UserProgress, error) {
	if err := checkCompletion(level, gameID, score); err != nil {
		return nil, err
	}

	p, err := l.update(ctx, userID, func(p *models.UserProgress, _ string) {
		p.SetLevel(level, applyGameCompletion(p.Level(level), gameID, score))
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordCompletion(string(level), metrics.KindRegular, score.Perfect())
	slog.Info("game completion recorded", "user_id", userID, "game_id", gameID, "level", string(level), "action", "record_game")
	return p, nil
}

// RecordDailyCompletion records a completion of the daily game for level.
// Only the first completion of a day moves the streak and totals.
func (l *Ledger) RecordDailyCompletion(ctx context.Context, userID string, level models.Level, gameID string, score models.Score) (*models.UserProgress, error) {
	if err := checkCompletion(level, gameID, score); err != nil {
		return nil, err
	}

	p, err := l.update(ctx, userID, func(p *models.UserProgress, today string) {
		p.SetDaily(level, applyDailyCompletion(p.DailyLevel(level), gameID, score, today))
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordCompletion(string(level), metrics.KindDaily, score.Perfect())
	slog.Info("daily completion recorded", "user_id", userID, "game_id", gameID, "level", string(level), "action", "record_daily")
	return p, nil
}

func checkCompletion(level models.Level, gameID string, score models.Score) error {
	if !level.Valid() {
		return fmt.Errorf("%w: %q", models.ErrInvalidLevel, level)
	}
	if gameID == "" {
		return ErrMissingGameID
	}
	if score.Mistakes < 0 || score.HintsUsed < 0 || score.TimeSeconds < 0 {
		return ErrInvalidScore
	}
	return nil
}

// update applies fn to the current document and writes it back only if no
// other writer got in between, re-reading and re-applying on a lost race.
func (l *Ledger) update(ctx context.Context, userID string, fn func(p *models.UserProgress, today string)) (*models.UserProgress, error) {
	for attempt := 1; attempt <= maxUpdateAttempts; attempt++ {
		p, err := l.GetOrCreate(ctx, userID)
		if err != nil {
			return nil, err
		}

		now, today := l.today()
		version := p.Version
		rolloverAll(p, today)
		fn(p, today)

		result := l.db.WithContext(ctx).
			Model(&models.UserProgress{}).
			Where("user_id = ? AND version = ?", userID, version).
			Updates(map[string]any{
				"easy":       p.Easy,
				"medium":     p.Medium,
				"hard":       p.Hard,
				"youth":      p.Youth,
				"daily":      p.Daily,
				"version":    version + 1,
				"updated_at": now,
			})
		if result.Error != nil {
			return nil, fmt.Errorf("failed to save progress: %w", result.Error)
		}
		if result.RowsAffected > 0 {
			p.Version = version + 1
			p.UpdatedAt = now
			return p, nil
		}

		metrics.ProgressConflictsTotal.Inc()
		slog.Warn("progress write conflict, retrying", "user_id", userID, "attempt", attempt)
	}
	return nil, ErrConcurrentUpdate
}

func applyGameCompletion(lp models.LevelProgress, gameID string, score models.Score) models.LevelProgress {
	games := make(map[string]models.GameProgressEntry, len(lp.Games)+1)
	for id, e := range lp.Games {
		games[id] = e
	}

	entry, seen := games[gameID]
	if !seen {
		lp.CompletedGames++
	}
	if score.Perfect() {
		lp.PerfectGames++
	}

	s := score
	entry.Completed = true
	entry.Attempts++
	entry.BestScore = &s
	games[gameID] = entry

	lp.Games = games
	return lp
}

func applyDailyCompletion(dp models.DailyLevelProgress, gameID string, score models.Score, today string) models.DailyLevelProgress {
	dp = rollover(dp, today)

	if !dp.CompletedToday {
		if dp.LastCompletedDate != nil && *dp.LastCompletedDate == previousDay(today) {
			dp.CurrentStreak++
		} else {
			dp.CurrentStreak = 1
		}
		if dp.CurrentStreak > dp.LongestStreak {
			dp.LongestStreak = dp.CurrentStreak
		}
		dp.TotalCompleted++
		d := today
		dp.LastCompletedDate = &d
		dp.CompletedToday = true
	}

	games := make(map[string]models.GameProgressEntry, len(dp.Games)+1)
	for id, e := range dp.Games {
		games[id] = e
	}
	s := score
	entry := games[gameID]
	entry.Completed = true
	entry.Attempts++
	entry.BestScore = &s
	games[gameID] = entry
	dp.Games = games

	return dp
}

// rollover derives the day-dependent fields of dp for today. A streak whose
// last completion is neither today nor yesterday is broken.
func rollover(dp models.DailyLevelProgress, today string) models.DailyLevelProgress {
	if dp.LastCompletedDate == nil {
		dp.CompletedToday = false
		dp.CurrentStreak = 0
		return dp
	}

	last := *dp.LastCompletedDate
	dp.CompletedToday = last == today
	if last != today && last != previousDay(today) {
		dp.CurrentStreak = 0
	}
	return dp
}

func rolloverAll(p *models.UserProgress, today string) {
	for _, l := range models.Levels {
		p.SetDaily(l, rollover(p.DailyLevel(l), today))
	}
}

func previousDay(date string) string {
	t, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, -1).Format(models.DateLayout)
}
