package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newBubbleCommand(openApp appFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bubble",
		Short: "Bubble-game score history",
	}
	cmd.AddCommand(newBubbleRecordCommand(openApp))
	cmd.AddCommand(newBubbleStatsCommand(openApp))
	return cmd
}

func newBubbleRecordCommand(openApp appFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "record <score>",
		Short: "Append a finished session's score",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			score, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("score must be an integer, got %q", args[0])
			}

			app, err := openApp()
			if err != nil {
				return err
			}
			if err := app.Game.Record(score); err != nil {
				return err
			}

			stats := app.Game.Stats()
			fmt.Printf("Recorded %d. Best %d, average %.1f over %d games.\n",
				score, stats.BestScore, stats.AverageScore, stats.GamesPlayed)
			return nil
		},
	}
}

func newBubbleStatsCommand(openApp appFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show game statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}
			stats := app.Game.Stats()
			fmt.Printf("Games played: %d\n", stats.GamesPlayed)
			fmt.Printf("Best score: %d\n", stats.BestScore)
			fmt.Printf("Average score: %.1f\n", stats.AverageScore)
			return nil
		},
	}
}
