// Package buildinfo resolves the version metadata coursegraph reports.
//
// Values come from -ldflags on this package. Release scripts that only set
// cli.Version and cli.Date are honored as fallbacks.
package buildinfo

import (
	"strings"

	"github.com/flarebyte/coursegraph/cli"
)

var (
	Version = "dev"
	Commit  = ""
	Date    = ""
	BuiltBy = ""
)

// Info is the resolved build metadata.
type Info struct {
	Version string
	Commit  string
	Date    string
	BuiltBy string
}

// Current resolves the package variables against the cli fallbacks. Version
// is never empty.
func Current() Info {
	info := Info{Version: Version, Commit: Commit, Date: Date, BuiltBy: BuiltBy}
	if info.Version == "" {
		info.Version = cli.Version
	}
	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Date == "" {
		info.Date = cli.Date
	}
	return info
}

// ShortCommit returns the first seven characters of the commit hash.
func (i Info) ShortCommit() string {
	if len(i.Commit) > 7 {
		return i.Commit[:7]
	}
	return i.Commit
}

// String renders the version with optional commit and date, for example
// "1.2.0 (commit=0123456, date=2026-10-01)".
func (i Info) String() string {
	var extra []string
	if c := i.ShortCommit(); c != "" {
		extra = append(extra, "commit="+c)
	}
	if i.Date != "" {
		extra = append(extra, "date="+i.Date)
	}
	if len(extra) == 0 {
		return i.Version
	}
	return i.Version + " (" + strings.Join(extra, ", ") + ")"
}

// Summary returns Current().String().
func Summary() string {
	return Current().String()
}
