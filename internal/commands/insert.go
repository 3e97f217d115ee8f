package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/i474232898/weatherline/internal/note"
)

func newInsertCommand(opts *rootOptions) *cobra.Command {
	var (
		path string
		cur  note.Cursor
	)

	cmd := &cobra.Command{
		Use:   "insert",
		Short: "Insert the weather line into a note at a cursor position",
		Long: `Insert the rendered weather line into a markdown note.

Description:
  The line is inserted at --line/--ch (0-based, ch counted in characters).
  The cursor after the inserted text is printed as LINE:CH.
  The note is only written once the weather has been fetched.
`,
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

			next, err := note.InsertFile(path, cur, line)
			if err != nil {
				return rt.fail(err)
			}

			rt.notify.Success("Weather inserted")
			fmt.Fprintln(cmd.OutOrStdout(), next)
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "file", "f", "", "Note to edit")
	cmd.Flags().IntVar(&cur.Line, "line", 0, "Cursor line (0-based)")
	cmd.Flags().IntVar(&cur.Ch, "ch", 0, "Cursor column (0-based)")
	cmd.MarkFlagRequired("file")

	return cmd
}
