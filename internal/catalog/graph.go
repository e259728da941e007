package catalog

import (
	"sort"

	"github.com/flarebyte/coursegraph/internal/prereq"
)

// Node is a course in the exported graph. Known is false for course numbers
// that are referenced by some prerequisite but absent from the catalog.
type Node struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
	Known bool   `json:"known" yaml:"known"`
}

// Edge points from a course to one course its prerequisite references. Via is
// the innermost combinator holding the reference ("and", "or"), or empty for
// a bare leaf.
type Edge struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
	Via  string `json:"via,omitempty" yaml:"via,omitempty"`
}

// Graph is a node and edge list keyed by course number.
type Graph struct {
	Nodes []Node `json:"nodes" yaml:"nodes"`
	Edges []Edge `json:"edges" yaml:"edges"`
}

// Graph derives the dependency graph of c. Output is sorted and free of
// duplicate nodes and edges.
func (c *Catalog) Graph() Graph {
	nodes := map[string]Node{}
	edges := map[Edge]struct{}{}
	sorted := c.Sorted()
	for _, r := range sorted {
		nodes[r.Number] = Node{ID: r.Number, Name: r.Name, Known: true}
	}
	for _, r := range sorted {
		if r.Prerequisite == nil {
			continue
		}
		collectEdges(r.Number, *r.Prerequisite, "", edges)
	}
	for e := range edges {
		if _, ok := nodes[e.To]; !ok {
			nodes[e.To] = Node{ID: e.To}
		}
	}

	g := Graph{Nodes: make([]Node, 0, len(nodes)), Edges: make([]Edge, 0, len(edges))}
	for _, n := range nodes {
		g.Nodes = append(g.Nodes, n)
	}
	for e := range edges {
		g.Edges = append(g.Edges, e)
	}
	sort.Slice(g.Nodes, func(i, j int) bool { return g.Nodes[i].ID < g.Nodes[j].ID })
	sort.Slice(g.Edges, func(i, j int) bool {
		a, b := g.Edges[i], g.Edges[j]
		if a.From != b.From {
			return a.From < b.From
		}
		if a.To != b.To {
			return a.To < b.To
		}
		return a.Via < b.Via
	})
	return g
}

func collectEdges(from string, e Expr, via string, out map[Edge]struct{}) {
	if ref, ok := e.Ref(); ok {
		out[Edge{From: from, To: ref, Via: via}] = struct{}{}
		return
	}
	kind := e.Kind()
	if kind != prereq.KindOr && kind != prereq.KindAnd {
		return
	}
	for _, child := range e.Children() {
		collectEdges(from, child, kind.String(), out)
	}
}
