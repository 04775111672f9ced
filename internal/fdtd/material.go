package fdtd

import "fmt"

// ElectroMagneticProperty is the linear, isotropic property set of a material.
type ElectroMagneticProperty struct {
	EpsilonR float64 // relative permittivity
	MuR      float64 // relative permeability
	SigmaE   float64 // electric conductivity, S/m
	SigmaM   float64 // magnetic conductivity, Ohm/m
}

func (p ElectroMagneticProperty) String() string {
	return fmt.Sprintf("{eps_r: %s, mu_r: %s, sigma_e: %s, sigma_m: %s}",
		FormatReal(p.EpsilonR), FormatReal(p.MuR), FormatReal(p.SigmaE), FormatReal(p.SigmaM))
}

// Material is a named electromagnetic material.
type Material struct {
	Name     string
	Property ElectroMagneticProperty
}

// NewMaterial creates a Material.
func NewMaterial(name string, property ElectroMagneticProperty) *Material {
	return &Material{Name: name, Property: property}
}

func (m *Material) String() string {
	return fmt.Sprintf("Material{%s, %s}", m.Name, m.Property)
}
