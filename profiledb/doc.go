// Package profiledb persists fitted rate profiles, one database per beam
// species, keyed three levels deep:
//
//	beam energy [keV, decimal string] → profile kind → Tabata dimension
//
// The beam energy key is the energy in keV written the shortest way that
// round-trips ("40.0" for 40 000 eV, "66.666" for 66 666 eV). The dimension
// key is the decimal integer; a negative dimension means Tabata integration
// was switched off.
//
// Backends:
//   - yaml:   <dir>/<species>.yaml, the whole nested map in one document.
//   - sqlite: <dir>/<species>.db, one row per leaf, JSON payload.
//   - memory: process-local maps, for tests and one-shot runs.
//
// All backends share the same contract:
//   - Import fails with ErrNoProfileForSpecies when the species database does
//     not exist, and with ErrProfileNotFound when any of the three keys is
//     missing. The two are distinct so callers can tell "never computed for
//     this species" from "computed, but not this variant".
//   - Export creates the directory and any missing intermediate level, and
//     replaces only the leaf it writes; sibling entries are preserved.
//
// Writers in different processes are not coordinated. Within one process a
// Store serialises its own operations.
package profiledb
