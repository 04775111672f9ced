package shape

import (
	"context"

	"github.com/specialistvlad/fdtdscene/internal/catalog"
	"github.com/specialistvlad/fdtdscene/internal/ctxlog"
	"github.com/specialistvlad/fdtdscene/internal/parseerr"
	"github.com/specialistvlad/fdtdscene/internal/tree"
	"github.com/zclconf/go-cty/cty"
)

const (
	catalogKind = "shape"
	sectionKey  = "shape"
)

// Catalog is the table of shape entries read from the `shape` section.
type Catalog struct {
	*catalog.Catalog[Entry]
}

// NewCatalog creates an empty shape catalog.
func NewCatalog(opts catalog.Options) *Catalog {
	return &Catalog{Catalog: catalog.New[Entry](catalogKind, opts)}
}

// Read populates the catalog from the document root. The `shape` table and
// one array per supported kind must be present; otherwise a
// *parseerr.StructuralError is returned and nothing is added. Invalid
// records are logged and skipped.
func (c *Catalog) Read(ctx context.Context, root cty.Value) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Reading shape catalog.")

	path := cty.GetAttrPath(sectionKey)
	table, ok := tree.Record(root, sectionKey)
	if !ok {
		return parseerr.Structuralf(catalogKind, path, "missing table %s", sectionKey)
	}

	batch := c.Begin()
	for _, kind := range supportedKinds {
		if err := c.readKind(ctx, batch, table, path, kind); err != nil {
			return err
		}
	}
	batch.Commit()

	logger.Debug("Shape catalog read.", "count", c.Len())
	return nil
}

// ReadKind populates the catalog with the records of a single kind from the
// `shape` table. Reading a kind without a parser, such as KindCylinder,
// fails with an error wrapping parseerr.ErrNotImplemented.
func (c *Catalog) ReadKind(ctx context.Context, table cty.Value, kind Kind) error {
	batch := c.Begin()
	if err := c.readKind(ctx, batch, table, cty.GetAttrPath(sectionKey), kind); err != nil {
		return err
	}
	batch.Commit()
	return nil
}

func (c *Catalog) readKind(ctx context.Context, batch *catalog.Batch[Entry], table cty.Value, path cty.Path, kind Kind) error {
	kindPath := path.GetAttr(kind.Key())

	parse, ok := parsers[kind]
	if !ok {
		return parseerr.Structuralf(catalogKind, kindPath, "shape kind %s: %w", kind, parseerr.ErrNotImplemented)
	}

	records, ok := tree.Array(table, kind.Key())
	if !ok {
		return parseerr.Structuralf(catalogKind, kindPath, "missing array %s", kind.Key())
	}

	ctxlog.FromContext(ctx).Debug("Reading shape records.", "kind", kind.Key(), "count", len(records))
	return catalog.ReadRecords(ctx, batch, records, kindPath, catalog.RecordFunc[Entry](parse))
}
