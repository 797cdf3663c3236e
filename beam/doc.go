// Package beam describes the fast neutral beam: its species, kinetic energy
// and the derived rest mass and speed.
//
// The speed is the non-relativistic inversion of the kinetic energy,
//
//	v = sqrt(2·E·e/m),
//
// with m taken from the isotope table in package species. A Beam also carries
// the plasma state it currently sees (electron temperature and density).
// Those are plain inputs for the rate packages; the beam does not evolve them.
//
// Errors:
//   - species.ErrUnknownSpecies: no isotope mass for the symbol.
//   - ErrInvalidInput:           negative, NaN, infinite or non-numeric energy.
package beam
