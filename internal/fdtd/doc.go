// Package fdtd holds the construction contracts of the simulation engine
// types the scene assembler produces: geometry primitives, electromagnetic
// materials and the placed objects that pair them.
//
// The assembler only constructs these values and hands them over. Field
// solvers, meshing and material dispersion live in the engine proper and are
// not part of this module.
package fdtd
