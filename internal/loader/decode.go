package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/flarebyte/coursegraph/internal/catalog"
	"gopkg.in/yaml.v3"
)

// collection is the top-level document: {"classes": [...]}.
type collection struct {
	Classes *[]catalog.Record `json:"classes" yaml:"classes"`
}

func (c collection) records() ([]catalog.Record, error) {
	if c.Classes == nil {
		return nil, fmt.Errorf("%w %q", catalog.ErrMissingField, "classes")
	}
	return *c.Classes, nil
}

// DecodeJSON decodes a course list document. The "classes" key must match
// exactly and trailing data after the top-level object is rejected.
func DecodeJSON(r io.Reader) ([]catalog.Record, error) {
	dec := json.NewDecoder(r)
	var top map[string]json.RawMessage
	if err := dec.Decode(&top); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errEmptyInput
		}
		return nil, err
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err == nil {
			return nil, errors.New("trailing data after course list")
		}
		return nil, err
	}
	var c collection
	if raw, ok := top["classes"]; ok {
		if err := json.Unmarshal(raw, &c.Classes); err != nil {
			return nil, err
		}
	}
	return c.records()
}

// DecodeYAML decodes the YAML rendition of the course list grammar. Exactly
// one document is accepted.
func DecodeYAML(r io.Reader) ([]catalog.Record, error) {
	dec := yaml.NewDecoder(r)
	var c collection
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errEmptyInput
		}
		return nil, err
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err == nil {
			return nil, errors.New("multiple YAML documents in course list")
		}
		return nil, err
	}
	return c.records()
}
