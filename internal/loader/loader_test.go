package loader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/flarebyte/coursegraph/internal/catalog"
	"github.com/flarebyte/coursegraph/internal/prereq"
	"github.com/flarebyte/coursegraph/internal/testutil"
)

func osPrerequisite() prereq.Expr[string] {
	return prereq.And(
		prereq.Course("CS101"),
		prereq.Or(prereq.Course("CS201"), prereq.Course("CS202")),
	)
}

func assertExample(t *testing.T, c *catalog.Catalog) {
	t.Helper()
	got := c.Prerequisite("OS")
	if got.Status != catalog.HasPrerequisite {
		t.Fatalf("OS status = %v", got.Status)
	}
	if !reflect.DeepEqual(*got.Expr, osPrerequisite()) {
		t.Fatalf("OS prerequisite = %s", got.Expr)
	}
	if got := c.Prerequisite("Intro"); got.Status != catalog.NoPrerequisite {
		t.Fatalf("Intro status = %v, want none", got.Status)
	}
	if got := c.Prerequisite("NoSuchCourse"); got.Status != catalog.NotFound {
		t.Fatalf("unknown status = %v", got.Status)
	}
}

func TestLoadJSON_EndToEndExample(t *testing.T) {
	c, err := LoadJSON(context.Background(), filepath.Join("testdata", "example.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("Len() = %d", c.Len())
	}
	assertExample(t, c)
}

func TestLoadYAML_EndToEndExample(t *testing.T) {
	c, err := Load(context.Background(), filepath.Join("testdata", "example.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	assertExample(t, c)
	rec, _ := c.Course("OS")
	if !reflect.DeepEqual(rec.Semesters, []catalog.Semester{catalog.Spring, catalog.Fall}) {
		t.Fatalf("OS semesters = %v", rec.Semesters)
	}
}

func TestLoad_KeyByNumber(t *testing.T) {
	c, err := Load(context.Background(), filepath.Join("testdata", "example.json"), catalog.WithKeyBy(catalog.KeyByNumber))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := c.Prerequisite("CS301"); got.Status != catalog.HasPrerequisite {
		t.Fatalf("CS301 status = %v", got.Status)
	}
}

func TestLoadJSON_MissingFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nope.json")
	_, err := LoadJSON(context.Background(), p)
	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected IOError, got %v", err)
	}
	if ioErr.Path != p || !strings.Contains(err.Error(), p) {
		t.Fatalf("error must carry path: %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped ErrNotExist, got %v", err)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		is      error
	}{
		{name: "xor tag", content: `{"classes":[{"course number":"X","course name":"Y","prerequisite":{"xor":[]}}]}`, is: prereq.ErrMalformed},
		{name: "or not list", content: `{"classes":[{"course number":"X","course name":"Y","prerequisite":{"or":{"course number":"A"}}}]}`, is: prereq.ErrMalformed},
		{name: "missing classes", content: `{"courses":[]}`, is: catalog.ErrMissingField},
		{name: "capitalized classes", content: `{"Classes":[{"course number":"X","course name":"Y"}]}`, is: catalog.ErrMissingField},
		{name: "null classes", content: `{"classes":null}`, is: catalog.ErrMissingField},
		{name: "missing name", content: `{"classes":[{"course number":"X"}]}`, is: catalog.ErrMissingField},
		{name: "bad semester", content: `{"classes":[{"course number":"X","course name":"Y","semesters":["summer"]}]}`},
		{name: "top-level list", content: `[]`},
		{name: "syntax", content: `{"classes":[`},
		{name: "empty", content: ``, is: errEmptyInput},
		{name: "trailing", content: `{"classes":[]} {}`},
	}
	for _, tt := range tests {
		p := testutil.WriteFile(t, t.TempDir(), "in.json", tt.content)
		_, err := LoadJSON(context.Background(), p)
		var decErr *DecodeError
		if !errors.As(err, &decErr) {
			t.Fatalf("%s: expected DecodeError, got %v", tt.name, err)
		}
		if decErr.Path != p {
			t.Fatalf("%s: DecodeError.Path = %q", tt.name, decErr.Path)
		}
		if tt.is != nil && !errors.Is(err, tt.is) {
			t.Fatalf("%s: expected %v in chain, got %v", tt.name, tt.is, err)
		}
	}
}

func TestDecodeYAMLErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		is      error
	}{
		{name: "xor tag", content: "classes:\n  - course number: X\n    course name: Y\n    prerequisite:\n      xor: []\n", is: prereq.ErrMalformed},
		{name: "missing classes", content: "courses: []\n", is: catalog.ErrMissingField},
		{name: "two documents", content: "classes: []\n---\nclasses: []\n"},
		{name: "empty", content: "", is: errEmptyInput},
	}
	for _, tt := range tests {
		p := testutil.WriteFile(t, t.TempDir(), "in.yaml", tt.content)
		_, err := Load(context.Background(), p)
		var decErr *DecodeError
		if !errors.As(err, &decErr) {
			t.Fatalf("%s: expected DecodeError, got %v", tt.name, err)
		}
		if tt.is != nil && !errors.Is(err, tt.is) {
			t.Fatalf("%s: expected %v in chain, got %v", tt.name, tt.is, err)
		}
	}
}

func TestLoadJSON_InputOrderLastWriteWins(t *testing.T) {
	p := testutil.WriteFile(t, t.TempDir(), "dup.json", `{"classes":[
		{"course number":"A1","course name":"Same"},
		{"course number":"A2","course name":"Same","prerequisite":{"course number":"A1"}}
	]}`)
	c, err := LoadJSON(context.Background(), p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	r, ok := c.Course("Same")
	if !ok || r.Number != "A2" || c.Len() != 1 {
		t.Fatalf("expected last record to win, got %+v (len %d)", r, c.Len())
	}
}

func TestLoadJSON_IgnoresUnknownFields(t *testing.T) {
	p := testutil.WriteFile(t, t.TempDir(), "extra.json", `{"version":2,"classes":[{"course number":"A","course name":"a","credits":3}]}`)
	c, err := LoadJSON(context.Background(), p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Len() != 1 {
		t.Fatalf("Len() = %d", c.Len())
	}
}

func TestLoadText(t *testing.T) {
	p := testutil.WriteFile(t, t.TempDir(), "courses.txt", "CS301 Operating Systems requires CS101\n")
	c, err := LoadText(context.Background(), p)
	if c != nil || !errors.Is(err, ErrTextNotSupported) {
		t.Fatalf("expected ErrTextNotSupported, got %v", err)
	}
	_, err = LoadText(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))
	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected IOError for missing file, got %v", err)
	}
}
