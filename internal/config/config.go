// Package config reads the optional coursegraph CUE config file and the
// COURSEGRAPH_* environment overrides.
package config

import (
	"fmt"

	"cuelang.org/go/cue"
)

// Config holds every value the CUE file may set. Has* flags record presence
// so callers can layer flags and environment on top.
type Config struct {
	ConfigVersion string
	Input         Input
	Catalog       Catalog
	Output        Output
	Filter        Filter
}

// Input holds optional input paths.
type Input struct {
	JSON    string
	Text    string
	HasJSON bool
	HasText bool
}

// Catalog holds optional catalog settings.
type Catalog struct {
	KeyBy    string
	HasKeyBy bool
}

// Output holds optional output settings.
type Output struct {
	Out       string
	Format    string
	Pretty    bool
	HasOut    bool
	HasFormat bool
	HasPretty bool
}

// Filter holds an optional Lua predicate applied by `list`.
type Filter struct {
	Inline    string
	HasInline bool
}

// Parse loads a CUE config file and extracts the known sections.
// Required fields:
//   - configVersion: string, see IsSupportedConfigVersion
func Parse(path string) (Config, error) {
	v, err := compileCUE(path)
	if err != nil {
		return Config{}, err
	}
	if err := requireStringField(v, "configVersion"); err != nil {
		return Config{}, err
	}
	var c Config
	if err := v.LookupPath(cue.ParsePath("configVersion")).Decode(&c.ConfigVersion); err != nil {
		return Config{}, fmt.Errorf("invalid value for configVersion: %v", err)
	}
	if err := checkConfigVersion(c.ConfigVersion); err != nil {
		return Config{}, err
	}
	c.Input = parseInputSection(v)
	if c.Catalog, err = parseCatalogSection(v); err != nil {
		return Config{}, err
	}
	if c.Output, err = parseOutputSection(v); err != nil {
		return Config{}, err
	}
	c.Filter = parseFilterSection(v)
	return c, nil
}
