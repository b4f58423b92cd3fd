package progress

import "github.com/ahmetcoskunkizilkaya/connections-backend/internal/models"

type Stats struct {
	TotalGamesCompleted int          `json:"totalGamesCompleted"`
	TotalPerfectGames   int          `json:"totalPerfectGames"`
	TotalDailyCompleted int          `json:"totalDailyCompleted"`
	LongestDailyStreak  int          `json:"longestDailyStreak"`
	FavoriteLevel       models.Level `json:"favoriteLevel"`
}

// Summarize folds a progress document into totals. The favorite level is the
// one with the most completed games, the earliest level winning ties.
func Summarize(p *models.UserProgress) Stats {
	stats := Stats{FavoriteLevel: models.LevelEasy}
	best := 0

	for _, l := range models.Levels {
		lp := p.Level(l)
		stats.TotalGamesCompleted += lp.CompletedGames
		stats.TotalPerfectGames += lp.PerfectGames
		if lp.CompletedGames > best {
			best = lp.CompletedGames
			stats.FavoriteLevel = l
		}

		dp := p.DailyLevel(l)
		stats.TotalDailyCompleted += dp.TotalCompleted
		if dp.LongestStreak > stats.LongestDailyStreak {
			stats.LongestDailyStreak = dp.LongestStreak
		}
	}
	return stats
}
