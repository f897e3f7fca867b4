package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/haven/internal/models"
	"github.com/terraincognita07/haven/internal/services"
)

func newSymptomsCommand(openApp appFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "symptoms",
		Short: "Log cycle symptoms and review insights",
	}
	cmd.AddCommand(newSymptomsLogCommand(openApp))
	cmd.AddCommand(newSymptomsListCommand(openApp))
	cmd.AddCommand(newSymptomsInsightsCommand(openApp))
	return cmd
}

func newSymptomsLogCommand(openApp appFactory) *cobra.Command {
	var (
		date     string
		mood     string
		flow     string
		cramps   int
		symptoms []string
		notes    string
	)

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Save today's symptoms (replaces an earlier entry for the same date)",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}

			if date == "" {
				date = services.Today(app.Now())
			}
			entry := models.SymptomEntry{
				Date:     date,
				Mood:     mood,
				Flow:     flow,
				Cramps:   cramps,
				Symptoms: symptoms,
				Notes:    notes,
			}
			if err := app.Symptoms.Log(entry); err != nil {
				return err
			}

			fmt.Printf("Saved %s  flow %s  cramps %d/10\n", entry.Date, valueOr(entry.Flow, "-"), entry.Cramps)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "entry date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&mood, "mood", "", "mood label, one of: "+strings.Join(models.MoodOptions(), ", "))
	cmd.Flags().StringVar(&flow, "flow", "", "flow label, one of: "+strings.Join(models.FlowOptions(), ", "))
	cmd.Flags().IntVar(&cramps, "cramps", 0, "cramp intensity, 0-10")
	cmd.Flags().StringArrayVar(&symptoms, "symptom", nil, "symptom tag (repeatable), one of: "+strings.Join(models.SymptomOptions(), ", "))
	cmd.Flags().StringVar(&notes, "notes", "", "free-text notes")
	return cmd
}

func newSymptomsListCommand(openApp appFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show recent symptom entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}

			recent := app.Symptoms.Recent(5)
			if len(recent) == 0 {
				fmt.Println("No entries yet. Start logging your symptoms!")
				return nil
			}
			for _, entry := range recent {
				fmt.Printf("%s  %s  flow %s  cramps %d/10", entry.Date, valueOr(entry.Mood, "-"), valueOr(entry.Flow, "-"), entry.Cramps)
				if len(entry.Symptoms) > 0 {
					fmt.Printf("  [%s]", strings.Join(entry.Symptoms, ", "))
				}
				if entry.Notes != "" {
					fmt.Printf("  %q", entry.Notes)
				}
				fmt.Println()
			}
			return nil
		},
	}
}

func newSymptomsInsightsCommand(openApp appFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "insights",
		Short: "Summarize the symptom history",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}

			insights := app.Symptoms.Insights()
			if insights.TotalEntries == 0 {
				fmt.Println("Start logging symptoms to see your insights!")
				return nil
			}
			fmt.Printf("Average cramp intensity: %.1f/10\n", insights.AverageCramps)
			fmt.Printf("Most common mood: %s\n", valueOr(insights.MostCommonMood, "-"))
			fmt.Printf("Total entries: %d\n", insights.TotalEntries)
			return nil
		},
	}
}

func valueOr(value string, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
