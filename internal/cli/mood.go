package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/haven/internal/models"
	"github.com/terraincognita07/haven/internal/services"
)

func newMoodCommand(openApp appFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mood",
		Short: "Track daily mood, energy and anxiety",
	}
	cmd.AddCommand(newMoodLogCommand(openApp))
	cmd.AddCommand(newMoodListCommand(openApp))
	return cmd
}

func newMoodLogCommand(openApp appFactory) *cobra.Command {
	var (
		date    string
		mood    int
		energy  int
		anxiety int
		notes   string
	)

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Save today's mood entry (replaces an earlier entry for the same date)",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}

			if date == "" {
				date = services.Today(app.Now())
			}
			entry := models.MoodEntry{
				Date:    date,
				Mood:    mood,
				Energy:  energy,
				Anxiety: anxiety,
				Notes:   notes,
			}
			if err := app.Mood.Log(entry); err != nil {
				return err
			}

			fmt.Printf("Saved %s %s  mood %d/10  energy %d/10  anxiety %d/10\n",
				entry.Date, services.MoodEmoji(entry.Mood), entry.Mood, entry.Energy, entry.Anxiety)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "entry date (YYYY-MM-DD, default today)")
	cmd.Flags().IntVar(&mood, "mood", 5, "overall mood, 1-10")
	cmd.Flags().IntVar(&energy, "energy", 5, "energy level, 1-10")
	cmd.Flags().IntVar(&anxiety, "anxiety", 5, "anxiety level, 1-10")
	cmd.Flags().StringVar(&notes, "notes", "", "free-text notes")
	return cmd
}

func newMoodListCommand(openApp appFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show recent entries and the weekly averages",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}

			recent := app.Mood.Recent(7)
			if len(recent) == 0 {
				fmt.Println("No mood entries yet. Start tracking your daily feelings!")
				return nil
			}

			for _, entry := range recent {
				fmt.Printf("%s %s  mood %d  energy %d  anxiety %d", entry.Date, services.MoodEmoji(entry.Mood), entry.Mood, entry.Energy, entry.Anxiety)
				if entry.Notes != "" {
					fmt.Printf("  %q", entry.Notes)
				}
				fmt.Println()
			}

			summary := app.Mood.WeeklySummary()
			fmt.Printf("\nWeekly average: mood %.1f  energy %.1f  anxiety %.1f (%d entries)\n",
				summary.Mood, summary.Energy, summary.Anxiety, summary.Entries)
			return nil
		},
	}
}
