// Package crosssection implements the analytic collision models used by the
// rate integrator.
//
// Three models share one calling convention, energy [eV] → value:
//
//   - BEB:    binary-encounter-Bethe electron-impact ionisation cross section [m²].
//   - Tabata: empirical charge-exchange (single or double capture) cross
//     section of a fast neutral on a plasma proton [m²].
//   - NRL:    the plasma-formulary ionisation rate [m³/s]. It is already a
//     Maxwellian average of the electron temperature and must not be fed
//     to the rate integrator.
//
// Tabata fit coefficients are external data. No table ships with the
// package: load one per capture degree with LoadTabataTable or
// OpenTabataTable and pass it to NewTabata.
//
// All of them satisfy Model, so integration code only ever sees
// Evaluate(energy). Func adapts a plain function, and EvaluateAll applies any
// Model to a slice of energies.
//
// Numerical policy:
//
//	NaN results (ln of a non-positive reduced energy, negative base raised to
//	a fractional power below the Tabata threshold) are returned as 0. Finite
//	but negative BEB values below threshold are returned as computed; callers
//	restrict the domain themselves.
package crosssection
