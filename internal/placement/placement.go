// Package placement parses `object` records: named pairings of a shape
// reference and a material reference with a build priority.
//
// References are kept as plain names here. Checking that they exist in the
// shape and material catalogs is the scene builder's job.
package placement

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/specialistvlad/fdtdscene/internal/catalog"
	"github.com/specialistvlad/fdtdscene/internal/ctxlog"
	"github.com/specialistvlad/fdtdscene/internal/parseerr"
	"github.com/specialistvlad/fdtdscene/internal/tree"
	"github.com/zclconf/go-cty/cty"
)

const (
	catalogKind = "object"
	sectionKey  = "object"
)

// Entry is a parsed placement record.
type Entry struct {
	Name         string
	ShapeName    string
	MaterialName string
	// Priority orders placements before building; lower values come first.
	Priority int
}

func (e Entry) String() string {
	return fmt.Sprintf("ObjectEntry: {name: %s, shape: %s, material: %s, priority: %d}",
		e.Name, e.ShapeName, e.MaterialName, e.Priority)
}

// Catalog is the table of placement entries read from the `object` array.
type Catalog struct {
	*catalog.Catalog[Entry]
}

// NewCatalog creates an empty placement catalog.
func NewCatalog(opts catalog.Options) *Catalog {
	return &Catalog{Catalog: catalog.New[Entry](catalogKind, opts)}
}

// Read populates the catalog from the document root. A missing `object`
// array or a non-table element is a *parseerr.StructuralError and nothing is
// added. Records missing any of name, shape, material or priority are logged
// and skipped.
func (c *Catalog) Read(ctx context.Context, root cty.Value) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Reading object catalog.")

	path := cty.GetAttrPath(sectionKey)
	records, ok := tree.Array(root, sectionKey)
	if !ok {
		return parseerr.Structuralf(catalogKind, path, "missing array %s", sectionKey)
	}

	batch := c.Begin()
	if err := catalog.ReadRecords(ctx, batch, records, path, parseEntry); err != nil {
		return err
	}
	batch.Commit()

	logger.Debug("Object catalog read.", "count", c.Len())
	return nil
}

// NamesByPriority returns all entry names ordered by ascending priority.
// Entries with equal priority are ordered by name.
func (c *Catalog) NamesByPriority() []string {
	entries := c.Entries()
	names := c.Names()
	slices.SortStableFunc(names, func(a, b string) int {
		return cmp.Compare(entries[a].Priority, entries[b].Priority)
	})
	return names
}

func parseEntry(_ context.Context, rec cty.Value, path cty.Path) (string, Entry, error) {
	name, ok := tree.String(rec, "name")
	if !ok {
		return "", Entry{}, parseerr.Recordf(catalogKind, path, "missing field name")
	}

	shapeName, ok := tree.String(rec, "shape")
	if !ok {
		return "", Entry{}, parseerr.Recordf(catalogKind, path, "object %q: missing field shape", name)
	}

	materialName, ok := tree.String(rec, "material")
	if !ok {
		return "", Entry{}, parseerr.Recordf(catalogKind, path, "object %q: missing field material", name)
	}

	priority, ok := tree.Int(rec, "priority")
	if !ok {
		return "", Entry{}, parseerr.Recordf(catalogKind, path, "object %q: missing integer field priority", name)
	}

	return name, Entry{
		Name:         name,
		ShapeName:    shapeName,
		MaterialName: materialName,
		Priority:     priority,
	}, nil
}
