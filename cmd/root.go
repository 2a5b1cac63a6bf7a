package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/andrewpaige1/typedeck-api/config"
)

var rootCmd = &cobra.Command{
	Use:          "typedeck",
	Short:        "Typed data modeling and flashcard generation API",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a config file (default ./config/config.yaml)")
	rootCmd.PersistentFlags().String("db", "", "Database URL (overrides DB_URL)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(generateCmd)
}

// loadConfig resolves configuration with --config and --db taking priority
// over the environment.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if url, _ := cmd.Flags().GetString("db"); url != "" {
		cfg.DB.URL = url
	}
	return cfg, nil
}

// bootstrap loads config and opens a migrated database.
func bootstrap(cmd *cobra.Command) (*config.Config, *zap.Logger, *gorm.DB, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}

	logger, err := config.NewLogger(cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("create logger: %w", err)
	}

	db, err := config.OpenDatabase(cfg.DB)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := config.Migrate(db); err != nil {
		return nil, nil, nil, err
	}

	return cfg, logger, db, nil
}
