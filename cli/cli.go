// Package cli holds release metadata stamped by the coursegraph release
// script:
//
//	go build -ldflags "-X 'github.com/flarebyte/coursegraph/cli.Version=1.2.3' -X 'github.com/flarebyte/coursegraph/cli.Date=2026-02-09'" ./cmd/coursegraph
//
// internal/buildinfo reads these when its own variables are unset.
package cli

var (
	Version string
	Date    string
)
