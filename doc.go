// Package sibeira computes plasma attenuation rates for neutral diagnostic
// beams, from atomic cross sections to cheap temperature-indexed profiles.
//
// What is sibeira?
//
//	A small numeric toolkit that brings together:
//		• Atomic data: binding energies, orbital constants, isotope masses
//		• Cross sections: BEB (electron impact), Tabata (charge exchange), NRL rates
//		• Thermal averaging: Maxwellian rate integrals in 1-D, 2-D and 3-D
//		• Interpolation: log-log not-a-knot cubic profiles over a temperature ladder
//		• Persistence: per-species profile databases in YAML or SQLite
//
// Packages, bottom-up:
//
//	physconst/     CODATA constants and isotope masses
//	species/       orbital constants table (embedded YAML) and beam masses
//	beam/          beam speed and attached plasma state
//	crosssection/  BEB, Tabata and NRL models behind one Model interface
//	quadrature/    adaptive Gauss–Legendre integration, finite and infinite ranges
//	integrator/    Maxwell-averaged rate coefficients, electron and ion targets
//	spline/        not-a-knot cubic and its log-log wrapper
//	profiledb/     three-level keyed profile store (yaml, sqlite, memory)
//	profile/       rate composition, ladder builds, import/export
//	config/        YAML run configuration and logger setup
//
// Quick example:
//
//	b, _ := profile.NewBuilder("Li", 40000, 0, profile.WithStore(store))
//	s, _ := b.ProfileFor(ctx, profile.KindBEB, profile.TabataOff)
//	k := s.Evaluate(350) // m³/s at Tₑ = 350 eV
//
// All computation is synchronous; see each package for its error kinds.
package sibeira
