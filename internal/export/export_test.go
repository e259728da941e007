package export

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/flarebyte/coursegraph/internal/catalog"
	"github.com/flarebyte/coursegraph/internal/loader"
	"github.com/flarebyte/coursegraph/internal/prereq"
)

func sampleCatalog(opts ...catalog.Option) *catalog.Catalog {
	osPrereq := prereq.And(prereq.Course("CS101"), prereq.Or(prereq.Course("CS201"), prereq.Course("CS202")))
	empty := prereq.Or[string]()
	return catalog.Build([]catalog.Record{
		{Number: "CS301", Name: "OS", Prerequisite: &osPrereq, Semesters: []catalog.Semester{catalog.Spring}},
		{Number: "CS101", Name: "Intro"},
		{Number: "X1", Name: "Closed", Prerequisite: &empty, Semesters: []catalog.Semester{}},
	}, opts...)
}

func TestCatalogJSON_RoundTrip(t *testing.T) {
	for _, pretty := range []bool{false, true} {
		c := sampleCatalog()
		b, err := CatalogJSON(c, pretty)
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		recs, err := loader.DecodeJSON(bytes.NewReader(b))
		if err != nil {
			t.Fatalf("decode %s: %v", string(b), err)
		}
		back := catalog.Build(recs)
		want := c.Sorted()
		got := back.Sorted()
		if len(got) != len(want) {
			t.Fatalf("len %d != %d", len(got), len(want))
		}
		for i := range want {
			if !reflect.DeepEqual(got[i], want[i]) {
				t.Fatalf("record %d\nwant: %+v\n got: %+v", i, want[i], got[i])
			}
		}
	}
}

func TestCatalogJSON_Deterministic(t *testing.T) {
	b, err := CatalogJSON(sampleCatalog(), false)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := `{"classes":[` +
		`{"course number":"X1","course name":"Closed","prerequisite":{"or":[]},"semesters":[]},` +
		`{"course number":"CS101","course name":"Intro","prerequisite":null,"semesters":null},` +
		`{"course number":"CS301","course name":"OS","prerequisite":{"and":[{"course number":"CS101"},{"or":[{"course number":"CS201"},{"course number":"CS202"}]}]},"semesters":["spring"]}` +
		"]}\n"
	if string(b) != want {
		t.Fatalf("unexpected output\nwant: %s\n got: %s", want, string(b))
	}
}

func TestGraphYAML(t *testing.T) {
	b, err := Graph(sampleCatalog().Graph(), FormatYAML, false)
	if err != nil {
		t.Fatalf("yaml: %v", err)
	}
	want := "nodes:\n" +
		"  - id: CS101\n    name: Intro\n    known: true\n" +
		"  - id: CS201\n    known: false\n" +
		"  - id: CS202\n    known: false\n" +
		"  - id: CS301\n    name: OS\n    known: true\n" +
		"  - id: X1\n    name: Closed\n    known: true\n" +
		"edges:\n" +
		"  - from: CS301\n    to: CS101\n    via: and\n" +
		"  - from: CS301\n    to: CS201\n    via: or\n" +
		"  - from: CS301\n    to: CS202\n    via: or\n"
	if string(b) != want {
		t.Fatalf("unexpected yaml\nwant:\n%s\ngot:\n%s", want, string(b))
	}
}

func TestGraphJSON(t *testing.T) {
	b, err := Graph(catalog.Build(nil).Graph(), FormatJSON, false)
	if err != nil {
		t.Fatalf("json: %v", err)
	}
	if string(b) != "{\"nodes\":[],\"edges\":[]}\n" {
		t.Fatalf("unexpected json: %s", string(b))
	}
}

func TestGraphDOT(t *testing.T) {
	b, err := Graph(sampleCatalog().Graph(), FormatDOT, false)
	if err != nil {
		t.Fatalf("dot: %v", err)
	}
	out := string(b)
	for _, want := range []string{
		"digraph prerequisites {\n",
		`"CS301" -> "CS101";`,
		`"CS301" -> "CS202" [style=dashed, label="or"];`,
		`"CS202" [label="CS202", style=dotted];`,
		`"CS101" [label="CS101\nIntro"];`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("dot output missing %q:\n%s", want, out)
		}
	}
}

func TestGraph_UnknownFormat(t *testing.T) {
	if _, err := Graph(catalog.Graph{}, "png", false); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	Table(&buf, "Courses", sampleCatalog().Sorted())
	out := buf.String()
	for _, want := range []string{"Courses", "NUMBER", "CS101", "CS101 and (CS201 or CS202)", "(impossible)", "spring"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table missing %q:\n%s", want, out)
		}
	}
}

func TestWriteTo(t *testing.T) {
	var stdout bytes.Buffer
	if err := WriteTo(&stdout, "-", []byte("x\n")); err != nil {
		t.Fatalf("stdout: %v", err)
	}
	if stdout.String() != "x\n" {
		t.Fatalf("stdout = %q", stdout.String())
	}
	p := filepath.Join(t.TempDir(), "nested", "out.json")
	if err := WriteTo(&stdout, p, []byte("{}\n")); err != nil {
		t.Fatalf("file: %v", err)
	}
	b, err := os.ReadFile(p)
	if err != nil || string(b) != "{}\n" {
		t.Fatalf("file content %q, err %v", string(b), err)
	}
}
