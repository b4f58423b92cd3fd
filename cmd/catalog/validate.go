package main

import (
	"fmt"

	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/catalog"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a JSON games file without touching the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("file")
			defs, err := readDefinitions(path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			errs := catalog.ValidateDefinitions(defs)
			for _, e := range errs {
				fmt.Fprintln(out, e)
			}
			if len(errs) > 0 {
				return fmt.Errorf("%d of %d games are invalid", len(errs), len(defs))
			}
			fmt.Fprintf(out, "%d games are valid\n", len(defs))
			return nil
		},
	}
	cmd.Flags().String("file", "", "JSON file with an array of games")
	return cmd
}
