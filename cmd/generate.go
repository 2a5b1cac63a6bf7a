package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/andrewpaige1/typedeck-api/flashcards"
	"github.com/andrewpaige1/typedeck-api/store"
)

var generateCmd = &cobra.Command{
	Use:   "generate <instance-id>",
	Short: "Generate flashcards for an instance",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, logger, db, err := bootstrap(cmd)
		if err != nil {
			return err
		}
		defer logger.Sync()

		cards, err := store.New(db).GenerateFlashcards(cmd.Context(), flashcards.NewGenerator(nil), args[0])
		if err != nil {
			return err
		}
		logger.Info("generated flashcards", zap.String("instance_id", args[0]), zap.Int("count", len(cards)))

		out := cmd.OutOrStdout()
		for _, c := range cards {
			fmt.Fprintf(out, "%s\t%-15s\t%s\n", c.PublicID, c.Type, c.Question)
		}
		return nil
	},
}
