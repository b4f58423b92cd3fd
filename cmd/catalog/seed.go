package main

import (
	"fmt"

	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/catalog"
	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/database"
	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the built-in games into an empty catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, store, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer database.Close(db)

			n, err := catalog.Seed(cmd.Context(), store, catalog.DefaultGames)
			if err != nil {
				return err
			}
			if n == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "catalog already has games, nothing seeded")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d games\n", n)
			return nil
		},
	}
}
