package catalog

import (
	"maps"
	"slices"

	"github.com/specialistvlad/fdtdscene/internal/parseerr"
)

// Options controls how a catalog accepts entries.
type Options struct {
	// RequireUniqueNames rejects a record whose name is already present
	// instead of letting it overwrite the earlier entry.
	RequireUniqueNames bool
}

// Catalog is a name-keyed table of entries of one kind.
type Catalog[E any] struct {
	kind    string
	opts    Options
	entries map[string]E
}

// New creates an empty catalog. Kind names the catalog in errors and logs.
func New[E any](kind string, opts Options) *Catalog[E] {
	return &Catalog[E]{
		kind:    kind,
		opts:    opts,
		entries: make(map[string]E),
	}
}

// Len returns the number of entries.
func (c *Catalog[E]) Len() int { return len(c.entries) }

// Lookup returns the entry with the given name.
func (c *Catalog[E]) Lookup(name string) (E, bool) {
	e, ok := c.entries[name]
	return e, ok
}

// Get returns the entry with the given name or a *parseerr.LookupError.
func (c *Catalog[E]) Get(name string) (E, error) {
	e, ok := c.entries[name]
	if !ok {
		var zero E
		return zero, &parseerr.LookupError{Catalog: c.kind, Name: name}
	}
	return e, nil
}

// Entries returns a copy of the name to entry table.
func (c *Catalog[E]) Entries() map[string]E {
	return maps.Clone(c.entries)
}

// Names returns all entry names in lexical order.
func (c *Catalog[E]) Names() []string {
	return slices.Sorted(maps.Keys(c.entries))
}
