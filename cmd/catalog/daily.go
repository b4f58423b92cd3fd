package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/daily"
	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/models"
	"github.com/spf13/cobra"
)

func newDailyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Show the daily game for a level, creating it if needed",
		RunE: func(cmd *cobra.Command, args []string) error {
			levelKey, _ := cmd.Flags().GetString("level")
			level, err := models.ParseLevel(levelKey)
			if err != nil {
				return fmt.Errorf("%w (valid: %s)", err, models.LevelKeys())
			}
			date, _ := cmd.Flags().GetString("date")
			if date == "" {
				date = daily.Today(time.Now())
			}

			db, store, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer database.Close(db)

			game, err := daily.NewSelector(store).GetDailyGame(cmd.Context(), level, date)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			source := ""
			if game.SourceGameID != nil {
				source = *game.SourceGameID
			}
			fmt.Fprintf(out, "%s  %s\n", game.ID, game.Title)
			fmt.Fprintf(out, "source: %s\n\n", source)
			for _, g := range game.Groups {
				fmt.Fprintf(out, "  [%d] %-28s %s\n", g.Difficulty, g.Category, strings.Join(g.Words, ", "))
			}
			return nil
		},
	}
	cmd.Flags().String("level", string(models.LevelEasy), "Level key: "+models.LevelKeys())
	cmd.Flags().String("date", "", "Date as YYYY-MM-DD (default today, UTC)")
	return cmd
}
