package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newExportCommand(openApp appFactory) *cobra.Command {
	var (
		format string
		from   string
		to     string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export symptom history and calendar marks",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}

			summary, err := app.Export.Summary(from, to)
			if err != nil {
				return err
			}
			if !summary.HasData {
				fmt.Println("Nothing to export in that range.")
				return nil
			}

			var writer io.Writer = os.Stdout
			if out != "" {
				file, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("create export file: %w", err)
				}
				defer file.Close()
				writer = file
			}

			switch format {
			case "csv":
				err = app.Export.WriteCSV(writer, from, to)
			case "json":
				err = app.Export.WriteJSON(writer, from, to)
			default:
				return fmt.Errorf("format must be csv or json, got %q", format)
			}
			if err != nil {
				return err
			}

			if out != "" {
				fmt.Printf("Exported %d entries (%s to %s) to %s\n", summary.TotalEntries, summary.DateFrom, summary.DateTo, out)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "csv", "output format: csv or json")
	cmd.Flags().StringVar(&from, "from", "", "inclusive start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "inclusive end date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&out, "out", "", "write to file instead of stdout")
	return cmd
}
