// Package filter selects catalog records with a sandboxed Lua predicate.
//
// The predicate sees these globals for each record:
//
//	number        course number (string)
//	name          display name (string)
//	semesters     list of offering terms, empty when unknown
//	requires      course numbers referenced by the prerequisite, deduplicated
//	prerequisite  infix rendering of the prerequisite, or nil
//
// Code that parses as a bare expression is evaluated as `return (...)`;
// anything else runs as a statement block. The predicate must return a
// boolean.
package filter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/flarebyte/coursegraph/internal/catalog"
	"github.com/flarebyte/coursegraph/internal/ctxlog"
	"github.com/flarebyte/coursegraph/internal/prereq"
	lua "github.com/yuin/gopher-lua"
)

// DefaultTimeout bounds a single predicate evaluation.
const DefaultTimeout = 250 * time.Millisecond

const chunkName = "<filter>"

// Predicate is a compiled filter. It is safe for concurrent use; each Match
// runs in a fresh Lua state.
type Predicate struct {
	source  string
	proto   *lua.FunctionProto
	timeout time.Duration
}

// Compile parses inline Lua code. A timeout <= 0 selects DefaultTimeout.
func Compile(inline string, timeout time.Duration) (*Predicate, error) {
	proto, err := compileChunk(strings.TrimSpace(inline), chunkName)
	if err != nil {
		return nil, fmt.Errorf("filter: %v", err)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Predicate{source: inline, proto: proto, timeout: timeout}, nil
}

// Source returns the code the predicate was compiled from.
func (p *Predicate) Source() string { return p.source }

// Match evaluates the predicate against r.
func (p *Predicate) Match(ctx context.Context, r *catalog.Record) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	L := newSandboxState(ctx)
	defer L.Close()
	for k, v := range recordGlobals(r) {
		L.SetGlobal(k, toLValue(L, v))
	}
	L.Push(L.NewFunctionFromProto(p.proto))
	if err := L.PCall(0, 1, nil); err != nil {
		if isTimeoutError(err) {
			return false, fmt.Errorf("filter: %s: timed out after %s", r.Number, p.timeout)
		}
		return false, fmt.Errorf("filter: %s: %v", r.Number, err)
	}
	ret := L.Get(-1)
	L.Pop(1)
	b, ok := ret.(lua.LBool)
	if !ok {
		return false, fmt.Errorf("filter: %s: predicate returned %s, want boolean", r.Number, ret.Type())
	}
	return bool(b), nil
}

// Apply returns the records matching p, preserving order. The first
// evaluation error aborts.
func Apply(ctx context.Context, p *Predicate, recs []*catalog.Record) ([]*catalog.Record, error) {
	out := make([]*catalog.Record, 0, len(recs))
	for _, r := range recs {
		ok, err := p.Match(ctx, r)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, r)
		}
	}
	ctxlog.FromContext(ctx).Debug("filter applied", "in", len(recs), "out", len(out))
	return out, nil
}

func recordGlobals(r *catalog.Record) map[string]any {
	semesters := make([]string, 0, len(r.Semesters))
	for _, s := range r.Semesters {
		semesters = append(semesters, string(s))
	}
	g := map[string]any{
		"number":       r.Number,
		"name":         r.Name,
		"semesters":    semesters,
		"requires":     []string{},
		"prerequisite": nil,
	}
	if r.Prerequisite != nil {
		g["requires"] = r.Prerequisite.Unmet(prereq.Set[string]{})
		g["prerequisite"] = r.Prerequisite.String()
	}
	return g
}
