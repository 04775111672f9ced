package fdtd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringers(t *testing.T) {
	c := NewCube(NewVector(0, 0, 0), NewVector(1, 1.5, 2))
	assert.Equal(t, "Cube{origin: (0, 0, 0), size: (1, 1.5, 2)}", c.String())

	m := NewMaterial("air", ElectroMagneticProperty{EpsilonR: 1, MuR: 1})
	assert.Equal(t, "Material{air, {eps_r: 1, mu_r: 1, sigma_e: 0, sigma_m: 0}}", m.String())

	o := NewObject("bg", c, m)
	assert.Contains(t, o.String(), "name: bg")
}

func TestFormatReal(t *testing.T) {
	assert.Equal(t, "1", FormatReal(1))
	assert.Equal(t, "1.5", FormatReal(1.5))
	assert.Equal(t, "5.8e+07", FormatReal(5.8e7))
	assert.Equal(t, "-0.25", FormatReal(-0.25))
}
