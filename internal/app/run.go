package app

import (
	"context"
	"fmt"
	"io"

	"github.com/specialistvlad/fdtdscene/internal/ctxlog"
	"github.com/specialistvlad/fdtdscene/internal/fdtd"
	"github.com/specialistvlad/fdtdscene/internal/material"
	"github.com/specialistvlad/fdtdscene/internal/placement"
	"github.com/specialistvlad/fdtdscene/internal/shape"
)

// Catalogs holds the three catalogs read from one document.
type Catalogs struct {
	Shapes     *shape.Catalog
	Materials  *material.Catalog
	Placements *placement.Catalog
}

// Read loads the configured document and reads every catalog from it. A
// structural error in any section aborts the read.
func (a *App) Read(ctx context.Context) (*Catalogs, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	if a.config.DefaultDocument {
		fmt.Fprintf(a.outW, "Reading default file: %s\n", a.config.DocumentPath)
	}

	root, err := a.loader.Load(ctx, a.docPath)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("Document loaded.", "path", a.docPath)

	opts := a.config.CatalogOptions()
	cats := &Catalogs{
		Shapes:     shape.NewCatalog(opts),
		Materials:  material.NewCatalog(opts),
		Placements: placement.NewCatalog(opts),
	}

	if err := cats.Shapes.Read(ctx, root); err != nil {
		return nil, fmt.Errorf("failed to read shapes: %w", err)
	}
	if err := cats.Materials.Read(ctx, root); err != nil {
		return nil, fmt.Errorf("failed to read materials: %w", err)
	}
	if err := cats.Placements.Read(ctx, root); err != nil {
		return nil, fmt.Errorf("failed to read objects: %w", err)
	}

	a.logger.Info("Catalogs read.",
		"shapes", cats.Shapes.Len(),
		"materials", cats.Materials.Len(),
		"objects", cats.Placements.Len(),
	)
	return cats, nil
}

// Build resolves every placement into a simulation object.
func (a *App) Build(ctx context.Context, cats *Catalogs) ([]*fdtd.Object, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	return a.builder.BuildAll(ctx, cats.Placements, cats.Shapes, cats.Materials)
}

// Result is the outcome of a successful run.
type Result struct {
	Catalogs *Catalogs
	Objects  []*fdtd.Object
}

// Run executes the main application logic: read the document, print the
// catalog listings, build the objects and print them.
func (a *App) Run(ctx context.Context) (*Result, error) {
	a.logger.Debug("App.Run method started.")

	cats, err := a.Read(ctx)
	if err != nil {
		return nil, err
	}

	printListing(a.outW, "Shapes", cats.Shapes.Names(), cats.Shapes.Lookup)
	printListing(a.outW, "Materials", cats.Materials.Names(), cats.Materials.Lookup)
	printListing(a.outW, "Objects", cats.Placements.Names(), cats.Placements.Lookup)

	objects, err := a.Build(ctx, cats)
	if err != nil {
		return nil, err
	}
	for _, obj := range objects {
		fmt.Fprintln(a.outW, obj)
	}
	a.logger.Info("Objects built.", "count", len(objects))

	a.logger.Debug("App.Run method finished.")
	return &Result{Catalogs: cats, Objects: objects}, nil
}

// printListing writes a titled section with one name line and one entry line
// per catalog entry, followed by a blank line.
func printListing[E fmt.Stringer](w io.Writer, title string, names []string, lookup func(string) (E, bool)) {
	fmt.Fprintf(w, "%s:\n", title)
	for _, name := range names {
		e, ok := lookup(name)
		if !ok {
			continue
		}
		fmt.Fprintln(w, name)
		fmt.Fprintln(w, e)
	}
	fmt.Fprintln(w)
}
