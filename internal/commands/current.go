package commands

import (
	"encoding/json"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newCurrentCommand(opts *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "current",
		Short: "Show every field of the normalized weather record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := setup(cmd, opts)
			if err != nil {
				return err
			}

			stop := rt.notify.Start("Fetching weather")
			rec, err := rt.service.Fetch(cmd.Context(), rt.cfg.Settings())
			stop()
			if err != nil {
				return rt.fail(err)
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(rec)
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleRounded)
			t.SetTitle(rec.Location)
			t.AppendHeader(table.Row{"Field", "Value"})
			t.AppendRows([]table.Row{
				{"Conditions", rec.Icon + " " + rec.Conditions},
				{"Temperature", rec.Temp},
				{"Feels like", rec.FeelsLike},
				{"Wind", rec.Wind},
				{"Humidity", rec.Humidity},
			})
			t.Render()
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the record as JSON")

	return cmd
}
