package list

import (
	"fmt"

	"github.com/flarebyte/coursegraph/internal/app"
	"github.com/flarebyte/coursegraph/internal/export"
	"github.com/flarebyte/coursegraph/internal/filter"
	"github.com/spf13/cobra"
)

// NewCmd creates the `coursegraph list` command.
func NewCmd(opts *app.Options) *cobra.Command {
	var (
		asJSON bool
		inline string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the catalog courses",
		Args:  app.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, c, err := app.Load(cmd.Context(), *opts)
			if err != nil {
				return err
			}
			recs := c.Sorted()
			src := inline
			if src == "" {
				src = s.Filter
			}
			if src != "" {
				p, err := filter.Compile(src, filter.DefaultTimeout)
				if err != nil {
					return &app.UsageError{Msg: err.Error()}
				}
				if recs, err = filter.Apply(cmd.Context(), p, recs); err != nil {
					return err
				}
			}
			out := cmd.OutOrStdout()
			if !asJSON {
				export.Table(out, fmt.Sprintf("%d courses", len(recs)), recs)
				return nil
			}
			for _, r := range recs {
				data, err := export.EncodeJSON(r, false)
				if err != nil {
					return err
				}
				if _, err := out.Write(data); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print one JSON record per line")
	cmd.Flags().StringVar(&inline, "filter", "", "Lua predicate selecting courses")
	return cmd
}
