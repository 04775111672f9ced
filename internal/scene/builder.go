// Package scene resolves placements against the shape and material catalogs
// and materializes the ordered list of simulation objects.
//
// Building is all-or-nothing. The first placement whose shape or material
// reference does not resolve aborts the build with a
// *parseerr.ResolutionError, and objects built for earlier placements are
// discarded. This differs from catalog reading, where a bad record is only
// logged and skipped.
package scene

import (
	"context"
	"fmt"

	"github.com/specialistvlad/fdtdscene/internal/ctxlog"
	"github.com/specialistvlad/fdtdscene/internal/fdtd"
	"github.com/specialistvlad/fdtdscene/internal/material"
	"github.com/specialistvlad/fdtdscene/internal/parseerr"
	"github.com/specialistvlad/fdtdscene/internal/placement"
	"github.com/specialistvlad/fdtdscene/internal/shape"
)

// ShapeSource resolves shape names. *shape.Catalog implements it.
type ShapeSource interface {
	Lookup(name string) (shape.Entry, bool)
}

// MaterialSource resolves material names. *material.Catalog implements it.
type MaterialSource interface {
	Lookup(name string) (material.Entry, bool)
}

// PlacementSource yields placements in build order. *placement.Catalog
// implements it.
type PlacementSource interface {
	NamesByPriority() []string
	Get(name string) (placement.Entry, error)
}

// Builder turns resolved placements into fdtd objects.
type Builder struct{}

// NewBuilder creates a Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// BuildAll builds one object per placement in ascending priority order. On
// error the returned slice is nil.
func (b *Builder) BuildAll(ctx context.Context, placements PlacementSource, shapes ShapeSource, materials MaterialSource) ([]*fdtd.Object, error) {
	logger := ctxlog.FromContext(ctx)
	names := placements.NamesByPriority()
	logger.Debug("Building objects.", "count", len(names))

	objects := make([]*fdtd.Object, 0, len(names))
	for _, name := range names {
		entry, err := placements.Get(name)
		if err != nil {
			return nil, fmt.Errorf("failed to build objects: %w", err)
		}

		obj, err := b.BuildOne(ctx, entry, shapes, materials)
		if err != nil {
			return nil, fmt.Errorf("failed to build objects: %w", err)
		}
		objects = append(objects, obj)
	}

	logger.Debug("All objects built.", "count", len(objects))
	return objects, nil
}

// BuildOne resolves a single placement by exact name lookup and constructs
// fresh shape and material instances for it.
func (b *Builder) BuildOne(ctx context.Context, entry placement.Entry, shapes ShapeSource, materials MaterialSource) (*fdtd.Object, error) {
	shapeEntry, ok := shapes.Lookup(entry.ShapeName)
	if !ok {
		return nil, &parseerr.ResolutionError{Placement: entry.Name, Kind: "shape", Name: entry.ShapeName}
	}

	materialEntry, ok := materials.Lookup(entry.MaterialName)
	if !ok {
		return nil, &parseerr.ResolutionError{Placement: entry.Name, Kind: "material", Name: entry.MaterialName}
	}

	ctxlog.FromContext(ctx).Debug("Object resolved.",
		"object", entry.Name,
		"shape", entry.ShapeName,
		"material", entry.MaterialName,
		"priority", entry.Priority,
	)
	return fdtd.NewObject(entry.Name, shapeEntry.Make(), materialEntry.Make()), nil
}
