// Package species is the static table of per-species atomic constants.
//
// It serves two lookups:
//
//   - Lookup(symbol, ionised) returns the orbital constants {B, U, N, Q, n}
//     consumed by the BEB cross section and the NRL rate formula.
//   - Mass(symbol) returns the rest mass of the beam/plasma isotope used to
//     turn kinetic energy into speed.
//
// The orbital table is a versioned YAML document embedded at build time
// (species.yaml). Rows may omit fields; the missing ones are filled once,
// in a fixed order, when the Constants value is built:
//
//	N = 1  →  Q = 1  →  n (1, or the principal quantum number with 2 collapsed to 1)
//	       →  U (neutral: U = B, ion: U = (Z − 5/16)²·2·Ry)
//
// Energies in B, U are in eV. Fields may also be written in Rydberg units
// (B_ry, U_ry) to keep hydrogen-like rows exact.
//
// Usage:
//
//	c, err := species.Lookup("He", false)
//	if err != nil { /* errors.Is(err, species.ErrUnknownSpecies) */ }
//	fmt.Println(c.B, c.U, c.N, c.Q, c.PrincipalN)
package species
