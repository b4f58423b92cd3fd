package main

import (
	"fmt"

	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/catalog"
	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/database"
	"github.com/spf13/cobra"
)

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Validate and add games from a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("file")
			defs, err := readDefinitions(path)
			if err != nil {
				return err
			}

			db, store, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer database.Close(db)

			out := cmd.OutOrStdout()
			failed := 0
			for _, res := range catalog.Import(cmd.Context(), store, defs) {
				if res.Err != nil {
					failed++
					fmt.Fprintf(out, "FAIL  %-8s %-32q %v\n", res.Level, res.Title, res.Err)
					continue
				}
				fmt.Fprintf(out, "OK    %-8s %-32q %s\n", res.Level, res.Title, res.ID)
			}

			fmt.Fprintf(out, "\n%d imported, %d failed\n", len(defs)-failed, failed)
			if failed > 0 {
				return fmt.Errorf("%d of %d games failed to import", failed, len(defs))
			}
			return nil
		},
	}
	cmd.Flags().String("file", "", "JSON file with an array of games")
	return cmd
}
