package export

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/flarebyte/coursegraph/internal/catalog"
	"gopkg.in/yaml.v3"
)

// Graph output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatDOT  = "dot"
)

// Graph renders g in format.
func Graph(g catalog.Graph, format string, pretty bool) ([]byte, error) {
	switch format {
	case "", FormatJSON:
		return EncodeJSON(g, pretty)
	case FormatYAML:
		return GraphYAML(g)
	case FormatDOT:
		return GraphDOT(g), nil
	}
	return nil, fmt.Errorf("unsupported graph format %q (expected json, yaml or dot)", format)
}

// GraphYAML returns canonical YAML: fixed key order, two-space indent and a
// single trailing newline.
func GraphYAML(g catalog.Graph) ([]byte, error) {
	nodes := &yaml.Node{Kind: yaml.SequenceNode}
	for _, n := range g.Nodes {
		m := mappingNode()
		appendPair(m, "id", scalarFrom(n.ID))
		if n.Name != "" {
			appendPair(m, "name", scalarFrom(n.Name))
		}
		appendPair(m, "known", scalarFrom(n.Known))
		nodes.Content = append(nodes.Content, m)
	}
	edges := &yaml.Node{Kind: yaml.SequenceNode}
	for _, e := range g.Edges {
		m := mappingNode()
		appendPair(m, "from", scalarFrom(e.From))
		appendPair(m, "to", scalarFrom(e.To))
		if e.Via != "" {
			appendPair(m, "via", scalarFrom(e.Via))
		}
		edges.Content = append(edges.Content, m)
	}
	top := mappingNode()
	appendPair(top, "nodes", nodes)
	appendPair(top, "edges", edges)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(top); err != nil {
		_ = enc.Close()
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	out := bytes.TrimRight(buf.Bytes(), "\n")
	out = append(out, '\n')
	return out, nil
}

func mappingNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode}
}

func appendPair(m *yaml.Node, key string, v *yaml.Node) {
	m.Content = append(m.Content, scalarNode(key), v)
}

func scalarNode(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

func scalarFrom(v any) *yaml.Node {
	n := &yaml.Node{}
	_ = n.Encode(v)
	return n
}

// GraphDOT renders g as a Graphviz digraph. Edges point from a course to the
// course it requires; "or" edges are dashed and unknown courses dotted.
func GraphDOT(g catalog.Graph) []byte {
	var b bytes.Buffer
	b.WriteString("digraph prerequisites {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString("  node [shape=box, penwidth=2.5];\n")
	for _, n := range g.Nodes {
		label := n.ID
		if n.Name != "" {
			label = n.ID + "\n" + n.Name
		}
		fmt.Fprintf(&b, "  %s [label=%s", strconv.Quote(n.ID), strconv.Quote(label))
		if !n.Known {
			b.WriteString(", style=dotted")
		}
		b.WriteString("];\n")
	}
	for _, e := range g.Edges {
		fmt.Fprintf(&b, "  %s -> %s", strconv.Quote(e.From), strconv.Quote(e.To))
		if e.Via == "or" {
			b.WriteString(" [style=dashed, label=\"or\"]")
		}
		b.WriteString(";\n")
	}
	b.WriteString("}\n")
	return b.Bytes()
}
