// Package shape parses named geometry records into a catalog of shape
// entries that can each materialize an fdtd.Shape.
package shape

import (
	"fmt"
	"strconv"

	"github.com/specialistvlad/fdtdscene/internal/fdtd"
)

// Kind identifies a shape variant of the document schema.
type Kind int

const (
	KindBox Kind = iota
	KindSphere
	// KindCylinder is part of the schema but has no parser.
	KindCylinder
)

// Key returns the document key holding records of this kind.
func (k Kind) Key() string {
	switch k {
	case KindBox:
		return "cube"
	case KindSphere:
		return "sphere"
	case KindCylinder:
		return "cylinder"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

func (k Kind) String() string { return k.Key() }

// Entry is a parsed shape record. The set of implementations is closed:
// Box and Sphere.
type Entry interface {
	fmt.Stringer
	// Kind returns the variant of the entry.
	Kind() Kind
	// Make constructs a fresh geometry instance.
	Make() fdtd.Shape
	sealed()
}

// Box is an axis-aligned box record.
type Box struct {
	Name   string
	Origin fdtd.Vector
	Size   fdtd.Vector
}

func (Box) Kind() Kind { return KindBox }

func (b Box) Make() fdtd.Shape { return fdtd.NewCube(b.Origin, b.Size) }

func (b Box) String() string {
	return fmt.Sprintf("CubeEntry: {name: %s, origin: %s, size: %s}", b.Name, b.Origin, b.Size)
}

func (Box) sealed() {}

// Sphere is a sphere record.
type Sphere struct {
	Name   string
	Center fdtd.Vector
	Radius float64
}

func (Sphere) Kind() Kind { return KindSphere }

func (s Sphere) Make() fdtd.Shape { return fdtd.NewSphere(s.Center, s.Radius) }

func (s Sphere) String() string {
	return fmt.Sprintf("SphereEntry: {name: %s, center: %s, radius: %s}",
		s.Name, s.Center, fdtd.FormatReal(s.Radius))
}

func (Sphere) sealed() {}
