// Package material parses named electromagnetic material records into a
// catalog of entries that can each materialize an fdtd.Material.
package material

import (
	"fmt"
	"strconv"

	"github.com/specialistvlad/fdtdscene/internal/fdtd"
)

// Field defaults applied when a record omits a property or gives it a
// non-numeric value.
const (
	DefaultRelativePermittivity = 1.0
	DefaultRelativePermeability = 1.0
	DefaultElectricConductivity = 0.0
	DefaultMagneticConductivity = 0.0
)

// Kind identifies a material variant of the document schema.
type Kind int

const (
	KindCommon Kind = iota
	// KindDispersive is selected by `dispersive = true` and has no parser.
	KindDispersive
)

func (k Kind) String() string {
	switch k {
	case KindCommon:
		return "common"
	case KindDispersive:
		return "dispersive"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Entry is a parsed, linear, non-dispersive material record.
type Entry struct {
	Name     string
	Property fdtd.ElectroMagneticProperty
}

// Make constructs a fresh material instance.
func (e Entry) Make() *fdtd.Material {
	return fdtd.NewMaterial(e.Name, e.Property)
}

func (e Entry) String() string {
	return fmt.Sprintf("Material: {%s, Relative Permittivity: %s, Relative Permeability: %s, Electric Conductivity: %s, Magnetic Conductivity: %s}",
		e.Name,
		fdtd.FormatReal(e.Property.EpsilonR),
		fdtd.FormatReal(e.Property.MuR),
		fdtd.FormatReal(e.Property.SigmaE),
		fdtd.FormatReal(e.Property.SigmaM),
	)
}
