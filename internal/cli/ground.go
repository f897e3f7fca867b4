package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/haven/internal/services"
)

func newGroundCommand(openApp appFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ground",
		Short: "5-4-3-2-1 grounding exercise",
	}
	cmd.AddCommand(newGroundStepsCommand())
	cmd.AddCommand(newGroundCompleteCommand(openApp))
	cmd.AddCommand(newGroundStatsCommand(openApp))
	return cmd
}

func newGroundStepsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "steps",
		Short: "Print the exercise steps",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, step := range services.GroundingSteps() {
				fmt.Printf("%d x %s: %s\n", step.Count, step.Sense, step.Instruction)
				for _, example := range step.Examples {
					fmt.Printf("    e.g. %s\n", example)
				}
			}
			return nil
		},
	}
}

func newGroundCompleteCommand(openApp appFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "complete",
		Short: "Record a completed session for today",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}
			if err := app.Grounding.Complete(app.Now()); err != nil {
				return err
			}
			stats := app.Grounding.Stats(app.Now())
			fmt.Printf("Session recorded. %d total, %d-day streak.\n", stats.TotalSessions, stats.CurrentStreak)
			return nil
		},
	}
}

func newGroundStatsCommand(openApp appFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show session totals and the current streak",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}
			stats := app.Grounding.Stats(app.Now())
			fmt.Printf("Completed sessions: %d\n", stats.TotalSessions)
			fmt.Printf("Current streak: %d days\n", stats.CurrentStreak)
			return nil
		},
	}
}
