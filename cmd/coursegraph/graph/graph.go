package graph

import (
	"github.com/flarebyte/coursegraph/internal/app"
	"github.com/flarebyte/coursegraph/internal/export"
	"github.com/spf13/cobra"
)

// NewCmd creates the `coursegraph graph` command.
func NewCmd(opts *app.Options) *cobra.Command {
	var (
		format string
		pretty bool
	)
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Export the prerequisite graph",
		Args:  app.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, c, err := app.Load(cmd.Context(), *opts)
			if err != nil {
				return err
			}
			f := format
			if f == "" {
				f = s.Format
			}
			if f == "" {
				f = export.FormatJSON
			}
			data, err := export.Graph(c.Graph(), f, pretty || s.Pretty)
			if err != nil {
				return &app.UsageError{Msg: err.Error()}
			}
			return export.WriteTo(cmd.OutOrStdout(), s.Output, data)
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "Output format: json, yaml or dot")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent JSON output")
	return cmd
}
