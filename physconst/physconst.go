// Package physconst holds the CODATA 2018 physical constants shared by the
// cross-section, beam and rate packages.
package physconst

// Fundamental constants (CODATA 2018, exact where SI defines them).
const (
	ElementaryCharge   = 1.602176634e-19   // [C]
	ElectronMass       = 9.1093837015e-31  // [kg]
	AtomicMassConstant = 1.66053906660e-27 // [kg]
	Planck             = 6.62607015e-34    // [J s]
	SpeedOfLight       = 299792458.0       // [m/s]
	RydbergConstant    = 10973731.568160   // [1/m]
)

// Derived constants.
const (
	// RydbergEnergy is the Rydberg energy R·h·c/e.
	RydbergEnergy = RydbergConstant * Planck * SpeedOfLight / ElementaryCharge // [eV]

	// BohrRadius is the rounded Bohr radius used by the BEB prefactor.
	BohrRadius = 0.52918e-10 // [m]
)

// Isotope masses of the beam and plasma species, in atomic mass units.
const (
	MassDeuterium = 2.0141017781212  // [u]
	MassLithium7  = 7.016003436645   // [u]
	MassSodium23  = 22.989769282019  // [u]
	MassKalium39  = 38.963706486449  // [u]
	MassRubidium  = 84.911789737954  // [u]
	MassCaesium   = 132.905451961080 // [u]
)
