package catalog

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/flarebyte/coursegraph/internal/prereq"
	"gopkg.in/yaml.v3"
)

// Expr is a prerequisite expression over course numbers.
type Expr = prereq.Expr[string]

// Semester is a term in which a course runs.
type Semester string

const (
	Spring Semester = "spring"
	Fall   Semester = "fall"
)

// ParseSemester validates a semester tag.
func ParseSemester(s string) (Semester, error) {
	switch Semester(s) {
	case Spring, Fall:
		return Semester(s), nil
	}
	return "", fmt.Errorf("unknown semester %q (expected \"spring\" or \"fall\")", s)
}

func (s *Semester) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("semester must be a string: %w", err)
	}
	v, err := ParseSemester(raw)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (s *Semester) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("semester must be a string: %w", err)
	}
	v, err := ParseSemester(raw)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*s = v
	return nil
}

// Record is one course. A nil Prerequisite means the course has none; nil
// Semesters means the offering terms are unknown.
type Record struct {
	Number       string     `json:"course number" yaml:"course number"`
	Name         string     `json:"course name" yaml:"course name"`
	Prerequisite *Expr      `json:"prerequisite" yaml:"prerequisite"`
	Semesters    []Semester `json:"semesters" yaml:"semesters"`
}

// ErrMissingField is wrapped when a required record field is absent.
var ErrMissingField = errors.New("missing field")

// recordWire distinguishes absent required fields from empty strings.
type recordWire struct {
	Number       *string    `json:"course number" yaml:"course number"`
	Name         *string    `json:"course name" yaml:"course name"`
	Prerequisite *Expr      `json:"prerequisite" yaml:"prerequisite"`
	Semesters    []Semester `json:"semesters" yaml:"semesters"`
}

func (w recordWire) record() (Record, error) {
	if w.Number == nil {
		return Record{}, fmt.Errorf("%w %q", ErrMissingField, "course number")
	}
	if w.Name == nil {
		return Record{}, fmt.Errorf("%w %q", ErrMissingField, "course name")
	}
	return Record{
		Number:       *w.Number,
		Name:         *w.Name,
		Prerequisite: w.Prerequisite,
		Semesters:    w.Semesters,
	}, nil
}

// UnmarshalJSON matches field names exactly; "COURSE NUMBER" is an unknown
// field, not an alias.
func (r *Record) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	var w recordWire
	for _, f := range []struct {
		name string
		dst  any
	}{
		{"course number", &w.Number},
		{"course name", &w.Name},
		{"prerequisite", &w.Prerequisite},
		{"semesters", &w.Semesters},
	} {
		if err := decodeField(fields, f.name, f.dst); err != nil {
			return err
		}
	}
	rec, err := w.record()
	if err != nil {
		return err
	}
	*r = rec
	return nil
}

// decodeField unmarshals fields[name] into dst when present.
func decodeField(fields map[string]json.RawMessage, name string, dst any) error {
	raw, ok := fields[name]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("field %q: %w", name, err)
	}
	return nil
}

func (r *Record) UnmarshalYAML(value *yaml.Node) error {
	var w recordWire
	if err := value.Decode(&w); err != nil {
		return err
	}
	rec, err := w.record()
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*r = rec
	return nil
}

// clone returns a copy of r sharing no memory with it. Expr values are
// immutable, so copying the pointed-to value is enough.
func (r Record) clone() Record {
	if r.Prerequisite != nil {
		e := *r.Prerequisite
		r.Prerequisite = &e
	}
	if r.Semesters != nil {
		r.Semesters = append(make([]Semester, 0, len(r.Semesters)), r.Semesters...)
	}
	return r
}

// Offered reports whether the course is known to run in s. Unknown offering
// terms report false.
func (r Record) Offered(s Semester) bool {
	for _, v := range r.Semesters {
		if v == s {
			return true
		}
	}
	return false
}
