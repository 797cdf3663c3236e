// Package profile turns the expensive rate integrals into cheap
// temperature → rate interpolants for one beam.
//
// Rate composes the attenuation rate of a beam at its current plasma state:
//
//   - beb:    electron-impact ionisation, BEB cross section integrated in 1-D;
//   - nrl:    electron-impact ionisation, closed-form NRL rate;
//   - tabata: charge exchange on plasma deuterons, Tabata single capture plus
//     weighted double capture integrated in 2-D or 3-D.
//
// beb and nrl optionally add the tabata term; a negative Tabata dimension
// (TabataOff) leaves it out. The Tabata fit tables are external data and
// must be supplied with WithTabataTables; without them any rate that needs
// charge exchange fails with crosssection.ErrNoTabataTable and nothing is
// built or exported.
//
// Builder evaluates a Rate over a ladder of reference electron temperatures
// (10…1000 eV by default) at unit density, fits a log-log cubic through the
// ladder and keeps one spline per (kind, dimension). Splines can be imported
// from and exported to a profiledb.Store; ProfileFor does import-or-build.
//
// A Builder mutates the plasma state of its beam while building and is not
// safe for concurrent use.
package profile
