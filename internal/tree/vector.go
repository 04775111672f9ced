package tree

import (
	"fmt"

	"github.com/specialistvlad/fdtdscene/internal/fdtd"
	"github.com/zclconf/go-cty/cty"
)

// Vector reads the named attribute as a 3-component numeric array.
func Vector(rec cty.Value, name string) (fdtd.Vector, error) {
	v, ok := Attr(rec, name)
	if !ok {
		return fdtd.Vector{}, fmt.Errorf("missing field %s", name)
	}

	elems, ok := Elements(v)
	if !ok {
		return fdtd.Vector{}, fmt.Errorf("field %s must be an array, got %s", name, v.Type().FriendlyName())
	}
	if len(elems) != 3 {
		return fdtd.Vector{}, fmt.Errorf("field %s must have exactly 3 components, got %d", name, len(elems))
	}

	var xyz [3]float64
	for i, elem := range elems {
		f, ok := asFloat(elem)
		if !ok {
			return fdtd.Vector{}, fmt.Errorf("field %s[%d] must be a number", name, i)
		}
		xyz[i] = f
	}
	return fdtd.NewVector(xyz[0], xyz[1], xyz[2]), nil
}
