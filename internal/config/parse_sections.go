package config

import "cuelang.org/go/cue"

// parseInputSection extracts optional input.* fields.
func parseInputSection(v cue.Value) Input {
	var in Input
	iv := v.LookupPath(cue.ParsePath("input"))
	if !iv.Exists() {
		return in
	}
	in.HasJSON = optionalString(iv, "json", &in.JSON)
	in.HasText = optionalString(iv, "text", &in.Text)
	return in
}

// parseCatalogSection extracts optional catalog.* fields.
func parseCatalogSection(v cue.Value) (Catalog, error) {
	var c Catalog
	cv := v.LookupPath(cue.ParsePath("catalog"))
	if !cv.Exists() {
		return c, nil
	}
	c.HasKeyBy = optionalString(cv, "keyBy", &c.KeyBy)
	if c.HasKeyBy {
		if err := oneOf("catalog.keyBy", c.KeyBy, "name", "number"); err != nil {
			return Catalog{}, err
		}
	}
	return c, nil
}

// parseOutputSection extracts optional output.* fields.
func parseOutputSection(v cue.Value) (Output, error) {
	var o Output
	ov := v.LookupPath(cue.ParsePath("output"))
	if !ov.Exists() {
		return o, nil
	}
	o.HasOut = optionalString(ov, "out", &o.Out)
	o.HasFormat = optionalString(ov, "format", &o.Format)
	o.HasPretty = optionalBool(ov, "pretty", &o.Pretty)
	if o.HasFormat {
		if err := oneOf("output.format", o.Format, "json", "yaml", "dot"); err != nil {
			return Output{}, err
		}
	}
	return o, nil
}

// parseFilterSection extracts optional filter.inline.
func parseFilterSection(v cue.Value) Filter {
	var f Filter
	fv := v.LookupPath(cue.ParsePath("filter"))
	if fv.Exists() {
		f.HasInline = optionalString(fv, "inline", &f.Inline)
	}
	return f
}
