package version

import (
	"fmt"
	"runtime"
	"time"

	"github.com/flarebyte/coursegraph/internal/buildinfo"
	"github.com/spf13/cobra"
)

// NewCmd creates the `coursegraph version` command.
func NewCmd() *cobra.Command {
	var short, asJSON bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the CLI version",
		RunE: func(cmd *cobra.Command, args []string) error {
			if short || !asJSON {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "coursegraph %s\n", buildinfo.Summary())
				return err
			}

			// JSON goes to stdout, a readable line to stderr.
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "coursegraph version: %s\n", buildinfo.Summary())
			info := buildinfo.Current()
			out := map[string]any{
				"version":   info.Version,
				"commit":    info.Commit,
				"date":      info.Date,
				"built_by":  info.BuiltBy,
				"go":        runtime.Version(),
				"go_os":     runtime.GOOS,
				"go_arch":   runtime.GOARCH,
				"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
			}
			return encodeJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "Print only the version string")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print detailed JSON version info")
	return cmd
}
