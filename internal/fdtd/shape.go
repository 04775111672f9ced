package fdtd

import (
	"fmt"
	"strconv"
)

// Vector is a point or extent in 3D space.
type Vector struct {
	X, Y, Z float64
}

// NewVector creates a Vector from its components.
func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

func (v Vector) String() string {
	return fmt.Sprintf("(%s, %s, %s)", FormatReal(v.X), FormatReal(v.Y), FormatReal(v.Z))
}

// Shape is a geometry primitive that can be placed in the simulation domain.
type Shape interface {
	fmt.Stringer
}

// Cube is an axis-aligned box spanning [Origin, Origin+Size].
type Cube struct {
	Origin Vector
	Size   Vector
}

// NewCube creates a Cube from its lower corner and its size.
func NewCube(origin, size Vector) *Cube {
	return &Cube{Origin: origin, Size: size}
}

func (c *Cube) String() string {
	return fmt.Sprintf("Cube{origin: %s, size: %s}", c.Origin, c.Size)
}

// Sphere is a ball of the given radius around Center.
type Sphere struct {
	Center Vector
	Radius float64
}

// NewSphere creates a Sphere.
func NewSphere(center Vector, radius float64) *Sphere {
	return &Sphere{Center: center, Radius: radius}
}

func (s *Sphere) String() string {
	return fmt.Sprintf("Sphere{center: %s, radius: %s}", s.Center, FormatReal(s.Radius))
}

// FormatReal renders a real number in its shortest exact form, e.g. 1, 1.5
// or 5.8e+07.
func FormatReal(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
