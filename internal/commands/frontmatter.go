package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/i474232898/weatherline/internal/note"
)

func newFrontmatterCommand(opts *rootOptions) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "frontmatter",
		Short: "Print the weather frontmatter block, or merge it into a note",
		Long: `Produce six quoted fields: temp, conditions, icon, wind, humidity, location.

Description:
  Without --file the block is printed. With --file the fields are merged into
  the note's frontmatter, creating the block when the note has none. A block
  that would not parse as YAML (for example a value with an unescaped quote)
  is rejected; pass --escape-quotes to escape such values.
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := setup(cmd, opts)
			if err != nil {
				return err
			}

			stop := rt.notify.Start("Fetching weather")
			fm, err := rt.service.Frontmatter(cmd.Context(), rt.cfg.Settings())
			stop()
			if err != nil {
				return rt.fail(err)
			}

			if path == "" {
				fmt.Fprintln(cmd.OutOrStdout(), fm.String())
				return nil
			}

			if err := note.MergeFile(path, fm); err != nil {
				return rt.fail(err)
			}
			rt.notify.Success("Weather frontmatter updated")
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "file", "f", "", "Note whose frontmatter is updated")

	return cmd
}
