package check

import (
	"github.com/flarebyte/coursegraph/internal/app"
	"github.com/flarebyte/coursegraph/internal/catalog"
	"github.com/flarebyte/coursegraph/internal/ctxlog"
	"github.com/flarebyte/coursegraph/internal/export"
	"github.com/flarebyte/coursegraph/internal/prereq"
	"github.com/spf13/cobra"
)

type result struct {
	Course    string   `json:"course"`
	Satisfied bool     `json:"satisfied"`
	Unmet     []string `json:"unmet"`
}

// NewCmd creates the `coursegraph check` command.
func NewCmd(opts *app.Options) *cobra.Command {
	var completed []string
	cmd := &cobra.Command{
		Use:   "check <course>",
		Short: "Check whether completed courses satisfy a course prerequisite",
		Args:  app.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, c, err := app.Load(cmd.Context(), *opts)
			if err != nil {
				return err
			}
			key := args[0]
			got := c.Prerequisite(key)
			res := result{Course: key, Satisfied: true, Unmet: []string{}}
			switch got.Status {
			case catalog.NotFound:
				return app.Exitf(app.ExitNotFound, "course not found: %s", key)
			case catalog.HasPrerequisite:
				done := prereq.NewSet(completed...)
				res.Satisfied = got.Expr.SatisfiedBy(done)
				if !res.Satisfied {
					res.Unmet = append(res.Unmet, got.Expr.Unmet(done)...)
				}
			}
			ctxlog.FromContext(cmd.Context()).Debug("prerequisite checked", "course", key, "completed", len(completed), "satisfied", res.Satisfied)
			data, err := export.EncodeJSON(res, false)
			if err != nil {
				return err
			}
			if _, err := cmd.OutOrStdout().Write(data); err != nil {
				return err
			}
			if !res.Satisfied {
				return app.Exitf(app.ExitUnsatisfied, "prerequisites not satisfied for %s", key)
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&completed, "completed", nil, "Completed courses (comma separated)")
	return cmd
}
