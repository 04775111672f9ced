package shape

import (
	"context"

	"github.com/specialistvlad/fdtdscene/internal/parseerr"
	"github.com/specialistvlad/fdtdscene/internal/tree"
	"github.com/zclconf/go-cty/cty"
)

// parser turns one record of a given kind into an entry.
type parser func(ctx context.Context, rec cty.Value, path cty.Path) (string, Entry, error)

// parsers holds the kinds that can be read. Kinds missing here are declared
// in the schema but unsupported.
var parsers = map[Kind]parser{
	KindBox:    parseBox,
	KindSphere: parseSphere,
}

// supportedKinds is the order in which Read visits the kind arrays.
var supportedKinds = []Kind{KindBox, KindSphere}

func parseBox(_ context.Context, rec cty.Value, path cty.Path) (string, Entry, error) {
	name, ok := tree.String(rec, "name")
	if !ok {
		return "", nil, parseerr.Recordf(catalogKind, path, "cube: missing field name")
	}

	start, err := tree.Vector(rec, "start")
	if err != nil {
		return "", nil, parseerr.Recordf(catalogKind, path, "cube %q: %w", name, err)
	}

	size, err := tree.Vector(rec, "size")
	if err != nil {
		return "", nil, parseerr.Recordf(catalogKind, path, "cube %q: %w", name, err)
	}

	return name, Box{Name: name, Origin: start, Size: size}, nil
}

func parseSphere(_ context.Context, rec cty.Value, path cty.Path) (string, Entry, error) {
	name, ok := tree.String(rec, "name")
	if !ok {
		return "", nil, parseerr.Recordf(catalogKind, path, "sphere: missing field name")
	}

	center, err := tree.Vector(rec, "center")
	if err != nil {
		return "", nil, parseerr.Recordf(catalogKind, path, "sphere %q: %w", name, err)
	}

	radius, ok := tree.Number(rec, "radius")
	if !ok {
		return "", nil, parseerr.Recordf(catalogKind, path, "sphere %q: missing field radius", name)
	}

	return name, Sphere{Name: name, Center: center, Radius: radius}, nil
}
