package prereq

// Set is a set of completed course references.
type Set[C comparable] map[C]struct{}

// NewSet returns a set holding items.
func NewSet[C comparable](items ...C) Set[C] {
	s := make(Set[C], len(items))
	for _, it := range items {
		s[it] = struct{}{}
	}
	return s
}

// Has reports whether ref is in s. A nil set is empty.
func (s Set[C]) Has(ref C) bool {
	_, ok := s[ref]
	return ok
}

// SatisfiedBy reports whether done satisfies e. Or stops at the first
// satisfied child and And at the first unsatisfied one, so an empty And is
// true and an empty Or is false. The zero Expr is never satisfied.
func (e Expr[C]) SatisfiedBy(done Set[C]) bool {
	switch e.kind {
	case KindCourse:
		return done.Has(e.ref)
	case KindOr:
		for _, c := range e.children {
			if c.SatisfiedBy(done) {
				return true
			}
		}
		return false
	case KindAnd:
		for _, c := range e.children {
			if !c.SatisfiedBy(done) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Unmet returns the leaf references of e that are not in done, without
// duplicates, in first-seen order.
func (e Expr[C]) Unmet(done Set[C]) []C {
	var out []C
	seen := Set[C]{}
	e.walk(func(ref C) {
		if done.Has(ref) || seen.Has(ref) {
			return
		}
		seen[ref] = struct{}{}
		out = append(out, ref)
	})
	return out
}
