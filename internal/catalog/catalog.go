// Package catalog holds the immutable set of known courses built from a
// loaded input collection, and answers prerequisite lookups against it.
package catalog

import (
	"fmt"
	"sort"
)

// KeyMode selects which record field keys the catalog.
type KeyMode int

const (
	// KeyByName keys courses by display name. Two courses sharing a name
	// collide and the later one wins.
	KeyByName KeyMode = iota
	// KeyByNumber keys courses by course number.
	KeyByNumber
)

func (m KeyMode) String() string {
	if m == KeyByNumber {
		return "number"
	}
	return "name"
}

// ParseKeyMode accepts "name" or "number". The empty string means KeyByName.
func ParseKeyMode(s string) (KeyMode, error) {
	switch s {
	case "", "name":
		return KeyByName, nil
	case "number":
		return KeyByNumber, nil
	}
	return KeyByName, fmt.Errorf("invalid key mode %q (expected \"name\" or \"number\")", s)
}

// Key returns the field of r used as catalog key under m.
func (m KeyMode) Key(r Record) string {
	if m == KeyByNumber {
		return r.Number
	}
	return r.Name
}

// Catalog is read-only after Build and safe for concurrent readers. Every
// accessor returns copies, so callers cannot reach the stored records.
type Catalog struct {
	keyBy   KeyMode
	courses map[string]*Record
}

// KeyMode reports how the catalog is keyed.
func (c *Catalog) KeyMode() KeyMode { return c.keyBy }

// Len returns the number of distinct keys.
func (c *Catalog) Len() int { return len(c.courses) }

// Courses returns every record in no particular order.
func (c *Catalog) Courses() []*Record {
	out := make([]*Record, 0, len(c.courses))
	for _, r := range c.courses {
		cp := r.clone()
		out = append(out, &cp)
	}
	return out
}

// Sorted returns every record ordered by key.
func (c *Catalog) Sorted() []*Record {
	keys := make([]string, 0, len(c.courses))
	for k := range c.courses {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]*Record, 0, len(keys))
	for _, k := range keys {
		cp := c.courses[k].clone()
		out = append(out, &cp)
	}
	return out
}

// Course returns the record stored under key.
func (c *Catalog) Course(key string) (*Record, bool) {
	r, ok := c.courses[key]
	if !ok {
		return nil, false
	}
	cp := r.clone()
	return &cp, true
}

// Status is the outcome of a prerequisite lookup.
type Status int

const (
	NotFound Status = iota
	NoPrerequisite
	HasPrerequisite
)

func (s Status) String() string {
	switch s {
	case NoPrerequisite:
		return "none"
	case HasPrerequisite:
		return "prerequisite"
	default:
		return "not-found"
	}
}

// Lookup is the three-way result of Prerequisite. Expr is set only when
// Status is HasPrerequisite.
type Lookup struct {
	Status Status
	Expr   *Expr
}

// Prerequisite looks up the prerequisite of the course stored under key.
func (c *Catalog) Prerequisite(key string) Lookup {
	r, ok := c.courses[key]
	if !ok {
		return Lookup{Status: NotFound}
	}
	if r.Prerequisite == nil {
		return Lookup{Status: NoPrerequisite}
	}
	e := *r.Prerequisite
	return Lookup{Status: HasPrerequisite, Expr: &e}
}
