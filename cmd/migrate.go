package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrewpaige1/typedeck-api/config"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		db, err := config.OpenDatabase(cfg.DB)
		if err != nil {
			return err
		}
		if err := config.Migrate(db); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Migrated %s database\n", cfg.DB.Driver)
		return nil
	},
}
