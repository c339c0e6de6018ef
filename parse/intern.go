package parse

import "slices"

// Interner hands out small sequential ids for labels.  The first time
// a label is seen it gets the next free id, and every later sighting
// returns the same id.
//
// Unlike every other parser in this package, parsers built with
// Intern mutate the table they're given.  A table is meant to be
// owned by a single top level parse.
type Interner struct {
	ids   map[string]int
	names []string
}

// NewInterner creates a table in which `preset` labels already have
// the ids 0, 1, 2, ... in order
func NewInterner(preset ...string) *Interner {
	in := &Interner{ids: make(map[string]int, len(preset))}
	for _, name := range preset {
		in.ID([]byte(name))
	}
	return in
}

// ID returns the id of `label`, allocating one if needed
func (in *Interner) ID(label []byte) int {
	// the conversion in the lookup doesn't allocate
	if id, ok := in.ids[string(label)]; ok {
		return id
	}
	id := len(in.names)
	name := string(label)
	in.ids[name] = id
	in.names = append(in.names, name)
	return id
}

// Lookup returns the id of `label` without allocating a new one
func (in *Interner) Lookup(label string) (int, bool) {
	id, ok := in.ids[label]
	return id, ok
}

// Name returns the label that received `id`
func (in *Interner) Name(id int) string { return in.names[id] }

// Len returns how many labels were seen
func (in *Interner) Len() int { return len(in.names) }

// Names returns a copy of all labels indexed by their ids
func (in *Interner) Names() []string { return slices.Clone(in.names) }

// Intern maps the text matched by `label` to its id in `table`
func Intern(table *Interner, label Parser[[]byte]) ParserFn[int] {
	return Map(label, table.ID)
}
