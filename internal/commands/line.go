package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLineCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "line",
		Short: "Print the rendered weather line",
		Example: `  weatherline line -l London --units metric
  weatherline line -l "New York" --template "{icon} {temp} ({feels_like})"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := setup(cmd, opts)
			if err != nil {
				return err
			}

			stop := rt.notify.Start("Fetching weather")
			line, err := rt.service.Line(cmd.Context(), rt.cfg.Settings())
			stop()
			if err != nil {
				return rt.fail(err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), line)
			return nil
		},
	}
}
