// Package integrator turns a cross section into a Maxwell-averaged rate
// coefficient.
//
// Two reaction targets are supported:
//
//   - Electron (dimension 1): thermal electrons hit an atom at rest. With the
//     speed scale v0 = sqrt(Tₑ·e/mₑ) and a Maxwell speed pdf P(v),
//
//     k = ∫₀^∞ P(v)·(v·v0)·σ(½mₑ(v·v0)²/e) dv / ∫₀^∞ P(v) dv.
//
//   - Ion (dimension 2 or 3): thermal deuterons with v1 = sqrt(Tₑ·e/m_D) meet
//     the fast beam atom. The relative speed follows the law of cosines,
//
//     w = sqrt(v_th² + v_b² − 2·v_th·v_b·cos α [·cos β]),
//
//     integrated over α ∈ [−π, π] (and β ∈ [−π/2, π/2] in 3-D).
//
// An optional secondary cross section (double ionisation or double capture)
// is added inside the integrand with a configurable weight, 2 by default.
//
// The normalisation integrals are 1, 2π and 2π² for dimensions 1, 2 and 3.
// They do not depend on temperature and are memoised in a NormalisationCache,
// which may be shared between integrators.
//
// Errors:
//   - ErrInvalidReaction:  unknown reaction name or target.
//   - ErrInvalidDimension: dimension outside {1,2,3} or not valid for the target.
//   - ErrInvalidInput:     non-positive temperature, negative beam speed, nil cross section.
//   - quadrature errors are returned as they come.
package integrator
