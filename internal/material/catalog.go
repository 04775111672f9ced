package material

import (
	"context"

	"github.com/specialistvlad/fdtdscene/internal/catalog"
	"github.com/specialistvlad/fdtdscene/internal/ctxlog"
	"github.com/specialistvlad/fdtdscene/internal/parseerr"
	"github.com/specialistvlad/fdtdscene/internal/tree"
	"github.com/zclconf/go-cty/cty"
)

const (
	catalogKind = "material"
	sectionKey  = "material"
)

// Catalog is the table of material entries read from the `material` array.
type Catalog struct {
	*catalog.Catalog[Entry]
}

// NewCatalog creates an empty material catalog.
func NewCatalog(opts catalog.Options) *Catalog {
	return &Catalog{Catalog: catalog.New[Entry](catalogKind, opts)}
}

// Read populates the catalog from the document root. A missing `material`
// array or a non-table element is a *parseerr.StructuralError and nothing is
// added. Records without a name and dispersive records are logged and
// skipped.
func (c *Catalog) Read(ctx context.Context, root cty.Value) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Reading material catalog.")

	path := cty.GetAttrPath(sectionKey)
	records, ok := tree.Array(root, sectionKey)
	if !ok {
		return parseerr.Structuralf(catalogKind, path, "missing array %s", sectionKey)
	}

	batch := c.Begin()
	if err := catalog.ReadRecords(ctx, batch, records, path, parseRecord); err != nil {
		return err
	}
	batch.Commit()

	logger.Debug("Material catalog read.", "count", c.Len())
	return nil
}
