package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/haven/internal/analytics"
)

func newInsightsCommand(openApp appFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "insights",
		Short: "Personalized cycle insights and phase guidance",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}
			now := app.Now()

			stats := app.Calendar.Stats(now)
			phase := stats.CurrentPhase
			if phase == analytics.PhaseUnknown {
				fmt.Println("Mark period days on the calendar to see your cycle phase.")
				phase = analytics.PhaseFollicular
			} else {
				fmt.Printf("Cycle day %d\n", stats.CurrentCycleDay)
			}

			guidance := analytics.GuidanceFor(phase)
			fmt.Printf("\n%s\n%s\n", guidance.Title, guidance.Description)
			for _, tip := range guidance.Tips {
				fmt.Printf("  - %s\n", tip)
			}

			insights := app.Symptoms.Insights()
			if insights.TotalEntries > 0 {
				fmt.Printf("\nYour stats\n")
				fmt.Printf("  Average cramp intensity: %.1f/10\n", insights.AverageCramps)
				fmt.Printf("  Most common mood: %s\n", insights.MostCommonMood)
				fmt.Printf("  Total entries: %d\n", insights.TotalEntries)
			} else {
				fmt.Println("\nStart logging symptoms to see your insights!")
			}
			return nil
		},
	}
}
