package catalog

// Option configures a Builder.
type Option func(*Builder)

// WithKeyBy sets the catalog key mode. The default is KeyByName.
func WithKeyBy(m KeyMode) Option {
	return func(b *Builder) { b.keyBy = m }
}

// Builder accumulates records and finalizes them into a Catalog once.
// Calling Add or Build after Build panics.
type Builder struct {
	keyBy    KeyMode
	records  []Record
	consumed bool
}

// NewBuilder returns an empty builder.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{}
	for _, o := range opts {
		o(b)
	}
	return b
}

// Add appends a copy of r. Duplicates are not checked here.
func (b *Builder) Add(r Record) {
	if b.consumed {
		panic("catalog: Builder.Add called after Build")
	}
	b.records = append(b.records, r.clone())
}

// Len returns the number of records added so far.
func (b *Builder) Len() int { return len(b.records) }

// Build finalizes the catalog. Records sharing a key resolve to the last one
// added.
func (b *Builder) Build() *Catalog {
	if b.consumed {
		panic("catalog: Builder.Build called twice")
	}
	b.consumed = true
	c := &Catalog{keyBy: b.keyBy, courses: make(map[string]*Record, len(b.records))}
	for i := range b.records {
		r := b.records[i]
		c.courses[b.keyBy.Key(r)] = &r
	}
	b.records = nil
	return c
}

// Build is shorthand for adding every record to a new Builder and building it.
func Build(records []Record, opts ...Option) *Catalog {
	b := NewBuilder(opts...)
	for _, r := range records {
		b.Add(r)
	}
	return b.Build()
}
