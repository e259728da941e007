package root

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/flarebyte/coursegraph/cmd/coursegraph/check"
	"github.com/flarebyte/coursegraph/cmd/coursegraph/graph"
	"github.com/flarebyte/coursegraph/cmd/coursegraph/list"
	"github.com/flarebyte/coursegraph/cmd/coursegraph/prereq"
	"github.com/flarebyte/coursegraph/cmd/coursegraph/version"
	"github.com/flarebyte/coursegraph/internal/app"
	"github.com/flarebyte/coursegraph/internal/config"
	"github.com/flarebyte/coursegraph/internal/ctxlog"
	"github.com/flarebyte/coursegraph/internal/export"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for coursegraph.
func NewRootCmd() *cobra.Command {
	opts := &app.Options{}
	cmd := &cobra.Command{
		Use:   "coursegraph",
		Short: "CLI: Load a course catalog and answer prerequisite questions",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return &app.UsageError{Msg: fmt.Sprintf("unknown command %q for %q", args[0], cmd.CommandPath())}
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadDotEnv(); err != nil {
				return err
			}
			logger := ctxlog.New(cmd.ErrOrStderr(), opts.Verbose)
			cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, c, err := app.Load(cmd.Context(), *opts)
			if err != nil {
				return err
			}
			if s.Output != "" {
				data, err := export.CatalogJSON(c, s.Pretty)
				if err != nil {
					return err
				}
				return export.WriteTo(cmd.OutOrStdout(), s.Output, data)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "{\"ok\":true,\"courses\":%d}\n", c.Len())
			return err
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &app.UsageError{Msg: err.Error()}
	})

	f := cmd.PersistentFlags()
	f.StringVarP(&opts.Input, "input", "i", "", "Free-text course list")
	f.StringVarP(&opts.JSInput, "jsinput", "j", "", "Structured course list (.json, .yaml or a directory)")
	f.StringVarP(&opts.Output, "output", "o", "", "Output file (- for stdout)")
	f.StringVarP(&opts.ConfigPath, "config", "c", "", "Path to config file (.cue)")
	f.StringVar(&opts.KeyBy, "key-by", "", "Catalog key: name or number")
	f.BoolVarP(&opts.Verbose, "verbose", "v", false, "Debug logging on stderr")

	// Subcommands
	cmd.AddCommand(version.NewCmd())
	cmd.AddCommand(prereq.NewCmd(opts))
	cmd.AddCommand(check.NewCmd(opts))
	cmd.AddCommand(list.NewCmd(opts))
	cmd.AddCommand(graph.NewCmd(opts))

	return cmd
}

// Execute runs the root command with provided args.
func Execute(args []string) error {
	return Run(context.Background(), args, os.Stdout, os.Stderr)
}

// Run executes args against a fresh root command writing to stdout and stderr.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cmd := NewRootCmd()
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.ExecuteContext(ctx)
}
