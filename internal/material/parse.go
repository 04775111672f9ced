package material

import (
	"context"

	"github.com/specialistvlad/fdtdscene/internal/ctxlog"
	"github.com/specialistvlad/fdtdscene/internal/fdtd"
	"github.com/specialistvlad/fdtdscene/internal/parseerr"
	"github.com/specialistvlad/fdtdscene/internal/tree"
	"github.com/zclconf/go-cty/cty"
)

type parser func(ctx context.Context, rec cty.Value, path cty.Path) (string, Entry, error)

// parsers holds the kinds that can be read; KindDispersive is absent.
var parsers = map[Kind]parser{
	KindCommon: parseCommon,
}

// kindOf selects the variant of a record from its `dispersive` flag. A
// missing or non-bool flag means a common material.
func kindOf(rec cty.Value) Kind {
	if dispersive, ok := tree.Bool(rec, "dispersive"); ok && dispersive {
		return KindDispersive
	}
	return KindCommon
}

func parseRecord(ctx context.Context, rec cty.Value, path cty.Path) (string, Entry, error) {
	kind := kindOf(rec)
	parse, ok := parsers[kind]
	if !ok {
		return "", Entry{}, parseerr.Recordf(catalogKind, path, "%s material: %w", kind, parseerr.ErrNotImplemented)
	}
	return parse(ctx, rec, path)
}

func parseCommon(ctx context.Context, rec cty.Value, path cty.Path) (string, Entry, error) {
	name, ok := tree.String(rec, "name")
	if !ok {
		return "", Entry{}, parseerr.Recordf(catalogKind, path, "missing field name")
	}

	logger := ctxlog.FromContext(ctx).With("material", name)
	number := func(field string, def float64) float64 {
		if v, ok := tree.Number(rec, field); ok {
			return v
		}
		logger.Debug("Field missing or not a number, using default.", "field", field, "default", def)
		return def
	}

	return name, Entry{
		Name: name,
		Property: fdtd.ElectroMagneticProperty{
			EpsilonR: number("relative_permittivity", DefaultRelativePermittivity),
			MuR:      number("relative_permeability", DefaultRelativePermeability),
			SigmaE:   number("electric_conductivity", DefaultElectricConductivity),
			SigmaM:   number("magnetic_conductivity", DefaultMagneticConductivity),
		},
	}, nil
}
