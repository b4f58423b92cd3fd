package progress

import (
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func progressWith(completed map[models.Level]int) *models.UserProgress {
	p := models.NewUserProgress("u", time.Now())
	for l, n := range completed {
		p.SetLevel(l, models.LevelProgress{CompletedGames: n, PerfectGames: n / 2})
	}
	return p
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name      string
		completed map[models.Level]int
		want      models.Level
		total     int
	}{
		{
			name: "empty favors easy",
			want: models.LevelEasy,
		},
		{
			name:      "medium has the most",
			completed: map[models.Level]int{models.LevelEasy: 3, models.LevelMedium: 5, models.LevelHard: 1, models.LevelYouth: 5},
			want:      models.LevelMedium,
			total:     14,
		},
		{
			name:      "tie goes to the earlier level",
			completed: map[models.Level]int{models.LevelHard: 2, models.LevelYouth: 2},
			want:      models.LevelHard,
			total:     4,
		},
		{
			name:      "single level",
			completed: map[models.Level]int{models.LevelYouth: 1},
			want:      models.LevelYouth,
			total:     1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := Summarize(progressWith(tt.completed))
			assert.Equal(t, tt.want, stats.FavoriteLevel)
			assert.Equal(t, tt.total, stats.TotalGamesCompleted)
		})
	}
}

func TestSummarizeDailyTotals(t *testing.T) {
	p := progressWith(map[models.Level]int{models.LevelEasy: 4, models.LevelHard: 3})
	p.SetDaily(models.LevelEasy, models.DailyLevelProgress{TotalCompleted: 6, CurrentStreak: 2, LongestStreak: 4})
	p.SetDaily(models.LevelYouth, models.DailyLevelProgress{TotalCompleted: 2, CurrentStreak: 2, LongestStreak: 7})

	stats := Summarize(p)
	assert.Equal(t, Stats{
		TotalGamesCompleted: 7,
		TotalPerfectGames:   3,
		TotalDailyCompleted: 8,
		LongestDailyStreak:  7,
		FavoriteLevel:       models.LevelEasy,
	}, stats)
}
