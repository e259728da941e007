// Package prereq models prerequisite expressions: boolean combinations of
// course references. The model is generic over the reference type so callers
// can resolve identifiers into richer values later.
package prereq

import (
	"fmt"
	"strings"
)

// Kind identifies which case of the expression sum type a value holds.
type Kind int

const (
	// KindInvalid is the zero Kind; an Expr with this kind was never constructed.
	KindInvalid Kind = iota
	// KindCourse is a leaf referencing a single course.
	KindCourse
	// KindOr is satisfied when any child is satisfied.
	KindOr
	// KindAnd is satisfied when every child is satisfied.
	KindAnd
)

// Wire tags shared by the JSON and YAML codecs.
const (
	TagCourse = "course number"
	TagOr     = "or"
	TagAnd    = "and"
)

func (k Kind) String() string {
	switch k {
	case KindCourse:
		return TagCourse
	case KindOr:
		return TagOr
	case KindAnd:
		return TagAnd
	default:
		return "invalid"
	}
}

// Expr is a prerequisite expression over course references of type C.
// Values are immutable: constructors and Children copy their slices, so two
// expressions never share a subtree.
type Expr[C comparable] struct {
	kind     Kind
	ref      C
	children []Expr[C]
}

// Course returns a leaf expression. The referenced course does not need to
// exist anywhere.
func Course[C comparable](ref C) Expr[C] {
	return Expr[C]{kind: KindCourse, ref: ref}
}

// Or returns a disjunction of children in the given order. An empty Or is
// never satisfied.
func Or[C comparable](children ...Expr[C]) Expr[C] {
	return Expr[C]{kind: KindOr, children: cloneChildren(children)}
}

// And returns a conjunction of children in the given order. An empty And is
// always satisfied.
func And[C comparable](children ...Expr[C]) Expr[C] {
	return Expr[C]{kind: KindAnd, children: cloneChildren(children)}
}

func cloneChildren[C comparable](in []Expr[C]) []Expr[C] {
	out := make([]Expr[C], len(in))
	copy(out, in)
	return out
}

// Kind reports the case held by e.
func (e Expr[C]) Kind() Kind { return e.kind }

// Ref returns the referenced course for a leaf.
func (e Expr[C]) Ref() (C, bool) {
	if e.kind != KindCourse {
		var zero C
		return zero, false
	}
	return e.ref, true
}

// Children returns a copy of the combinator's children, or nil for a leaf.
func (e Expr[C]) Children() []Expr[C] {
	if e.kind != KindOr && e.kind != KindAnd {
		return nil
	}
	return cloneChildren(e.children)
}

// Equal reports structural equality.
func (e Expr[C]) Equal(o Expr[C]) bool {
	if e.kind != o.kind {
		return false
	}
	if e.kind == KindCourse {
		return e.ref == o.ref
	}
	if len(e.children) != len(o.children) {
		return false
	}
	for i := range e.children {
		if !e.children[i].Equal(o.children[i]) {
			return false
		}
	}
	return true
}

// Refs returns every leaf reference in depth-first order. Duplicates are kept.
func (e Expr[C]) Refs() []C {
	var out []C
	e.walk(func(ref C) { out = append(out, ref) })
	return out
}

func (e Expr[C]) walk(fn func(C)) {
	switch e.kind {
	case KindCourse:
		fn(e.ref)
	case KindOr, KindAnd:
		for _, c := range e.children {
			c.walk(fn)
		}
	}
}

// String renders e in infix form, e.g. "CS101 and (CS201 or CS202)".
func (e Expr[C]) String() string {
	var b strings.Builder
	e.render(&b, false)
	return b.String()
}

func (e Expr[C]) render(b *strings.Builder, nested bool) {
	switch e.kind {
	case KindCourse:
		fmt.Fprint(b, e.ref)
	case KindOr, KindAnd:
		if len(e.children) == 0 {
			if e.kind == KindAnd {
				b.WriteString("(none)")
			} else {
				b.WriteString("(impossible)")
			}
			return
		}
		if len(e.children) == 1 {
			e.children[0].render(b, nested)
			return
		}
		if nested {
			b.WriteByte('(')
		}
		for i, c := range e.children {
			if i > 0 {
				b.WriteString(" " + e.kind.String() + " ")
			}
			c.render(b, true)
		}
		if nested {
			b.WriteByte(')')
		}
	default:
		b.WriteString("<invalid>")
	}
}
