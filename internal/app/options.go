// Package app resolves command options from flags, environment and the
// config file, and loads the catalog the commands operate on.
package app

import (
	"context"

	"github.com/flarebyte/coursegraph/internal/catalog"
	"github.com/flarebyte/coursegraph/internal/config"
	"github.com/flarebyte/coursegraph/internal/ctxlog"
	"github.com/flarebyte/coursegraph/internal/loader"
)

// Options holds the root persistent flags. Empty strings mean unset.
type Options struct {
	Input      string
	JSInput    string
	Output     string
	ConfigPath string
	KeyBy      string
	Verbose    bool
}

// Settings are options after layering flags over environment over the
// config file.
type Settings struct {
	Input   string
	JSInput string
	// Output is empty when no destination was requested.
	Output string
	KeyBy  catalog.KeyMode
	Format string
	Pretty bool
	Filter string
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// Resolve layers opts over the COURSEGRAPH_* environment and the config file
// named by --config or COURSEGRAPH_CONFIG.
func Resolve(opts Options) (Settings, error) {
	env := config.ReadEnv()
	var cfg config.Config
	if p := firstNonEmpty(opts.ConfigPath, env.Config); p != "" {
		c, err := config.Parse(p)
		if err != nil {
			return Settings{}, &ExitError{Code: ExitUsage, Err: err}
		}
		cfg = c
	}
	keyBy, err := catalog.ParseKeyMode(firstNonEmpty(opts.KeyBy, env.KeyBy, cfg.Catalog.KeyBy))
	if err != nil {
		return Settings{}, &UsageError{Msg: err.Error()}
	}
	return Settings{
		Input:   firstNonEmpty(opts.Input, env.Input, cfg.Input.Text),
		JSInput: firstNonEmpty(opts.JSInput, env.JSInput, cfg.Input.JSON),
		Output:  firstNonEmpty(opts.Output, cfg.Output.Out),
		KeyBy:   keyBy,
		Format:  cfg.Output.Format,
		Pretty:  cfg.Output.Pretty,
		Filter:  cfg.Filter.Inline,
	}, nil
}

// LoadCatalog loads from the structured input when set, otherwise from the
// free-text input. Structured input wins when both are set.
func (s Settings) LoadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	log := ctxlog.FromContext(ctx)
	switch {
	case s.JSInput != "":
		if s.Input != "" {
			log.Debug("both inputs set, using structured input", "jsinput", s.JSInput, "input", s.Input)
		}
		c, err := loader.Load(ctx, s.JSInput, catalog.WithKeyBy(s.KeyBy))
		if err != nil {
			return nil, err
		}
		log.Debug("catalog loaded", "path", s.JSInput, "courses", c.Len(), "keyBy", s.KeyBy.String())
		return c, nil
	case s.Input != "":
		return loader.LoadText(ctx, s.Input)
	default:
		return nil, ErrNoInput
	}
}

// Load resolves opts and loads the catalog they select.
func Load(ctx context.Context, opts Options) (Settings, *catalog.Catalog, error) {
	s, err := Resolve(opts)
	if err != nil {
		return Settings{}, nil, err
	}
	c, err := s.LoadCatalog(ctx)
	if err != nil {
		return s, nil, err
	}
	return s, c, nil
}
