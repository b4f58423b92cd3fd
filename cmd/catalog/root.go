package main

import (
	"fmt"
	"os"

	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/catalog"
	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/database"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "catalog",
		Short:         "Manage the Brain Connections game catalog",
		Long:          "Seed, import, validate and preview the word-grouping games served by the API.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentFlags().String("db", "", "Path to a SQLite database file (overrides DB_DRIVER and the postgres settings)")

	root.AddCommand(newSeedCmd())
	root.AddCommand(newImportCmd())
	root.AddCommand(newValidateCmd())
	root.AddCommand(newDailyCmd())
	return root
}

// openStore connects using --db when given, otherwise the same environment
// configuration as the server, and makes sure the schema exists.
func openStore(cmd *cobra.Command) (*gorm.DB, *catalog.Store, error) {
	cfg := config.Load()
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBDriver = "sqlite"
		cfg.SQLitePath = p
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, err
	}
	if err := database.Migrate(db); err != nil {
		database.Close(db)
		return nil, nil, err
	}
	return db, catalog.NewStore(db), nil
}

func readDefinitions(path string) ([]catalog.GameDefinition, error) {
	if path == "" {
		return nil, fmt.Errorf("--file is required")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return catalog.DecodeDefinitions(f)
}
