package catalog

import (
	"context"
	"errors"

	"github.com/specialistvlad/fdtdscene/internal/ctxlog"
	"github.com/specialistvlad/fdtdscene/internal/parseerr"
	"github.com/specialistvlad/fdtdscene/internal/tree"
	"github.com/zclconf/go-cty/cty"
)

// Batch stages entries for a single read. Nothing is visible in the catalog
// until Commit.
type Batch[E any] struct {
	c      *Catalog[E]
	staged map[string]E
	order  []string
}

// Begin starts a new batch on the catalog.
func (c *Catalog[E]) Begin() *Batch[E] {
	return &Batch[E]{c: c, staged: make(map[string]E)}
}

// Len returns the number of staged entries.
func (b *Batch[E]) Len() int { return len(b.staged) }

// Add stages an entry. With RequireUniqueNames set, a name already present
// in the catalog or the batch yields a *parseerr.RecordError and the first
// entry is kept. Otherwise the new entry replaces the old one and the
// returned bool is true.
func (b *Batch[E]) Add(path cty.Path, name string, e E) (replaced bool, err error) {
	_, inBatch := b.staged[name]
	_, inCatalog := b.c.entries[name]
	exists := inBatch || inCatalog

	if exists && b.c.opts.RequireUniqueNames {
		return false, parseerr.Recordf(b.c.kind, path, "duplicate %s name %q", b.c.kind, name)
	}
	if !inBatch {
		b.order = append(b.order, name)
	}
	b.staged[name] = e
	return exists, nil
}

// Commit publishes all staged entries to the catalog.
func (b *Batch[E]) Commit() {
	for _, name := range b.order {
		b.c.entries[name] = b.staged[name]
	}
	b.staged = make(map[string]E)
	b.order = nil
}

// RecordFunc turns a single record into a named entry. It returns a
// *parseerr.RecordError when the record is unusable.
type RecordFunc[E any] func(ctx context.Context, rec cty.Value, path cty.Path) (string, E, error)

// ReadRecords runs fn over every element of an array and stages the results.
// A non-record element is a structural error that stops the read. Record
// errors are logged as warnings and the record is skipped. Any other error
// from fn is returned as is.
func ReadRecords[E any](ctx context.Context, b *Batch[E], elems []cty.Value, path cty.Path, fn RecordFunc[E]) error {
	logger := ctxlog.FromContext(ctx).With("catalog", b.c.kind)

	for i, elem := range elems {
		recPath := path.Index(cty.NumberIntVal(int64(i)))
		if !tree.IsRecord(elem) {
			return parseerr.Structuralf(b.c.kind, recPath, "element is not a table")
		}

		name, entry, err := fn(ctx, elem, recPath)
		if err == nil {
			var replaced bool
			replaced, err = b.Add(recPath, name, entry)
			if err == nil {
				if replaced {
					logger.Warn("Duplicate name found, the earlier entry is overwritten.", "name", name, "record", tree.FormatPath(recPath))
				}
				logger.Debug("Record accepted.", "name", name, "record", tree.FormatPath(recPath))
				continue
			}
		}

		var recErr *parseerr.RecordError
		if !errors.As(err, &recErr) {
			return err
		}
		logger.Warn("Skipping invalid record.", "record", tree.FormatPath(recPath), "error", err)
	}
	return nil
}
