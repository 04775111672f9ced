// Package parseerr defines the error kinds raised while assembling a scene.
//
// The pipeline distinguishes four severities:
//
//   - StructuralError: a required top-level table or array is missing or
//     malformed. It aborts the whole catalog read.
//   - RecordError: a single record is malformed. Catalogs recover from it by
//     logging a warning and skipping the record.
//   - LookupError: a name queried against a catalog does not exist.
//   - ResolutionError: a placement references a shape or material that is
//     not in its catalog. It aborts the whole build.
//
// Callers tell them apart with errors.As.
package parseerr

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/fdtdscene/internal/tree"
	"github.com/zclconf/go-cty/cty"
)

// ErrNotImplemented is wrapped by errors raised for schema variants that are
// declared but have no parser, such as cylinder shapes or dispersive materials.
var ErrNotImplemented = errors.New("not implemented")

// StructuralError reports a missing or malformed top-level section.
type StructuralError struct {
	Catalog string
	Path    cty.Path
	Err     error
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Catalog, tree.FormatPath(e.Path), e.Err)
}

func (e *StructuralError) Unwrap() error { return e.Err }

// Structuralf creates a StructuralError with a formatted message.
func Structuralf(catalog string, path cty.Path, format string, args ...any) *StructuralError {
	return &StructuralError{Catalog: catalog, Path: path, Err: fmt.Errorf(format, args...)}
}

// RecordError reports a single record that could not be turned into an entry.
type RecordError struct {
	Catalog string
	Path    cty.Path
	Err     error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Catalog, tree.FormatPath(e.Path), e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

// Recordf creates a RecordError with a formatted message. Use %w to keep a
// cause such as ErrNotImplemented inspectable.
func Recordf(catalog string, path cty.Path, format string, args ...any) *RecordError {
	return &RecordError{Catalog: catalog, Path: path, Err: fmt.Errorf(format, args...)}
}

// LookupError reports a name that is not present in a catalog.
type LookupError struct {
	Catalog string
	Name    string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s: name %q is not found", e.Catalog, e.Name)
}

// ResolutionError reports a placement whose shape or material reference
// does not resolve.
type ResolutionError struct {
	Placement string
	// Kind is the kind of reference that failed, "shape" or "material".
	Kind string
	Name string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("object %q: %s %q is not found", e.Placement, e.Kind, e.Name)
}
