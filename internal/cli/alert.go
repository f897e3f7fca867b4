package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/haven/internal/geo"
)

func newAlertCommand(dbPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alert",
		Short: "Emergency alert toolkit",
	}
	cmd.AddCommand(newAlertSendCommand(dbPath))
	cmd.AddCommand(newAlertHistoryCommand(dbPath))
	return cmd
}

func newAlertSendCommand(dbPath *string) *cobra.Command {
	var (
		lat float64
		lng float64
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Build and record an emergency alert for your contacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			var locator geo.Locator
			if cmd.Flags().Changed("lat") && cmd.Flags().Changed("lng") {
				locator = geo.Fixed{Position: geo.Coordinates{Lat: lat, Lng: lng}}
			}

			app, err := NewApp(*dbPath, locator)
			if err != nil {
				return err
			}

			alert, err := app.Alerts.Send(cmd.Context(), app.Now())
			if err != nil {
				return err
			}

			fmt.Println(alert.Message)
			if alert.Guidance != "" {
				fmt.Println(alert.Guidance)
			}
			if len(alert.Recipients) == 0 {
				fmt.Println("Warning: no emergency contacts are set up. Add some with `haven contacts add`.")
			} else {
				fmt.Printf("Recipients (%d):\n", len(alert.Recipients))
				for _, contact := range alert.Recipients {
					fmt.Printf("  %s  %s\n", contact.Name, contact.Phone)
				}
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&lat, "lat", 0, "latitude to attach")
	cmd.Flags().Float64Var(&lng, "lng", 0, "longitude to attach")
	return cmd
}

func newAlertHistoryCommand(dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show past alerts",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := NewApp(*dbPath, nil)
			if err != nil {
				return err
			}

			events := app.Alerts.History()
			if len(events) == 0 {
				fmt.Println("No alerts recorded.")
				return nil
			}
			for _, event := range events {
				line := fmt.Sprintf("%s  %s  %s", event.ID, event.Timestamp, event.Type)
				if event.Location != nil {
					line += fmt.Sprintf("  (%v, %v)", event.Location.Lat, event.Location.Lng)
				}
				fmt.Println(line)
			}
			return nil
		},
	}
}
