package prereq

import (
	"fmt"

	"github.com/flarebyte/coursegraph/internal/app"
	"github.com/flarebyte/coursegraph/internal/catalog"
	"github.com/flarebyte/coursegraph/internal/export"
	"github.com/spf13/cobra"
)

type result struct {
	Course       string        `json:"course"`
	Status       string        `json:"status"`
	Prerequisite *catalog.Expr `json:"prerequisite,omitempty"`
}

// NewCmd creates the `coursegraph prereq` command.
func NewCmd(opts *app.Options) *cobra.Command {
	var text bool
	cmd := &cobra.Command{
		Use:   "prereq <course>",
		Short: "Print the prerequisite of a course",
		Args:  app.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, c, err := app.Load(cmd.Context(), *opts)
			if err != nil {
				return err
			}
			key := args[0]
			got := c.Prerequisite(key)
			if got.Status == catalog.NotFound {
				return app.Exitf(app.ExitNotFound, "course not found: %s", key)
			}
			if text {
				line := "none"
				if got.Expr != nil {
					line = got.Expr.String()
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), line)
				return err
			}
			data, err := export.EncodeJSON(result{Course: key, Status: got.Status.String(), Prerequisite: got.Expr}, false)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().BoolVar(&text, "text", false, "Print the prerequisite as an infix expression")
	return cmd
}
