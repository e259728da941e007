package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// compileCUE loads and compiles a CUE file at the given path.
func compileCUE(path string) (cue.Value, error) {
	if filepath.Ext(path) != ".cue" {
		return cue.Value{}, errors.New("unsupported config format: expected .cue")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cue.Value{}, fmt.Errorf("failed to read config: %w", err)
	}
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename(path))
	if err := v.Err(); err != nil {
		return cue.Value{}, fmt.Errorf("invalid config: %v", err)
	}
	return v, nil
}

func requireStringField(v cue.Value, name string) error {
	f := v.LookupPath(cue.ParsePath(name))
	if !f.Exists() {
		return fmt.Errorf("missing required field: %s", name)
	}
	if f.Kind() != cue.StringKind {
		return fmt.Errorf("invalid type for field: %s (expected string)", name)
	}
	return nil
}

// optionalString decodes section.field when it is a string.
func optionalString(section cue.Value, field string, dst *string) bool {
	fv := section.LookupPath(cue.ParsePath(field))
	if !fv.Exists() || fv.Kind() != cue.StringKind {
		return false
	}
	return fv.Decode(dst) == nil
}

// optionalBool decodes section.field when it is a bool.
func optionalBool(section cue.Value, field string, dst *bool) bool {
	fv := section.LookupPath(cue.ParsePath(field))
	if !fv.Exists() || fv.Kind() != cue.BoolKind {
		return false
	}
	return fv.Decode(dst) == nil
}

func oneOf(field, v string, allowed ...string) error {
	for _, a := range allowed {
		if v == a {
			return nil
		}
	}
	return fmt.Errorf("invalid value for %s: %q", field, v)
}
