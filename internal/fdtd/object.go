package fdtd

import "fmt"

// Object is a shape filled with a material, the unit the engine places into
// its grid. An Object owns its Shape and Material.
type Object struct {
	Name     string
	Shape    Shape
	Material *Material
}

// NewObject creates an Object.
func NewObject(name string, shape Shape, material *Material) *Object {
	return &Object{Name: name, Shape: shape, Material: material}
}

func (o *Object) String() string {
	return fmt.Sprintf("Object{name: %s, shape: %s, material: %s}", o.Name, o.Shape, o.Material)
}
