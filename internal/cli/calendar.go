package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newCalendarCommand(openApp appFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Period calendar: mark days, review the month, see predictions",
	}
	cmd.AddCommand(newCalendarShowCommand(openApp))
	cmd.AddCommand(newCalendarPeriodCommand(openApp))
	cmd.AddCommand(newCalendarFlowCommand(openApp))
	cmd.AddCommand(newCalendarOvulationCommand(openApp))
	return cmd
}

func newCalendarShowCommand(openApp appFactory) *cobra.Command {
	var monthArg string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the month's marked days and cycle stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}

			now := app.Now()
			year, month := now.Year(), now.Month()
			if monthArg != "" {
				parsed, err := time.ParseInLocation("2006-01", monthArg, app.Location)
				if err != nil {
					return fmt.Errorf("month must be YYYY-MM, got %q", monthArg)
				}
				year, month = parsed.Year(), parsed.Month()
			}

			fmt.Printf("%s %d\n", month, year)
			for _, cell := range app.Calendar.MonthCells(year, month, now) {
				if !cell.HasMark && !cell.IsToday {
					continue
				}
				marker := " "
				if cell.IsToday {
					marker = "*"
				}
				line := fmt.Sprintf("%s %s", marker, cell.Date)
				if cell.Mark.IsPeriod {
					line += "  period"
					if cell.Mark.Flow != "" {
						line += " (" + cell.Mark.Flow + ")"
					}
				}
				if cell.Mark.IsOvulation {
					line += "  ovulation"
				}
				fmt.Println(line)
			}

			periodDays := app.Calendar.PeriodDayCount(year, month)
			density := app.Calendar.MonthDensity(year, month)
			fmt.Printf("\nThis month: %d period days (%.0f%%)\n", periodDays, density*100)

			stats := app.Calendar.Stats(now)
			if !stats.LastPeriodStart.IsZero() {
				fmt.Printf("Cycle day %d (%s)\n", stats.CurrentCycleDay, stats.CurrentPhase)
				if stats.AverageCycleLength > 0 {
					fmt.Printf("Average cycle: %.1f days\n", stats.AverageCycleLength)
				}
				fmt.Printf("Next period expected: %s\n", stats.NextPeriodStart.Format("2006-01-02"))
				fmt.Printf("Fertility window: %s to %s\n",
					stats.FertilityWindowStart.Format("2006-01-02"),
					stats.FertilityWindowEnd.Format("2006-01-02"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&monthArg, "month", "", "month to show (YYYY-MM, default current)")
	return cmd
}

func newCalendarPeriodCommand(openApp appFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "period <date>",
		Short: "Toggle the period flag for a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}
			if err := app.Calendar.ToggleIsPeriod(args[0]); err != nil {
				return err
			}
			mark, _ := app.Calendar.Mark(args[0])
			if mark.IsPeriod {
				fmt.Printf("%s marked as a period day\n", args[0])
			} else {
				fmt.Printf("%s period mark removed\n", args[0])
			}
			return nil
		},
	}
}

func newCalendarFlowCommand(openApp appFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "flow <date> <light|medium|heavy>",
		Short: "Set flow intensity for a date (marks it as a period day)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}
			if err := app.Calendar.SetFlow(args[0], args[1]); err != nil {
				return err
			}
			fmt.Printf("%s flow set to %s\n", args[0], args[1])
			return nil
		},
	}
}

func newCalendarOvulationCommand(openApp appFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "ovulation <date>",
		Short: "Toggle the ovulation flag for a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}
			return app.Calendar.ToggleIsOvulation(args[0])
		},
	}
}
