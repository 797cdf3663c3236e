// Package quadrature integrates real functions over finite, half-infinite and
// infinite intervals, and over nested N-dimensional boxes, with a globally
// adaptive Gauss–Legendre rule.
//
// Algorithm (one dimension):
//  1. Map an infinite range onto a finite one: x = a + t/(1−t), dx = dt/(1−t)².
//  2. Estimate the whole interval with an n-point Gauss–Legendre rule G(a,b),
//     and again as G(a,m)+G(m,b). The difference is the error estimate.
//  3. Keep segments in a max-heap by error; bisect the worst one until the
//     summed error is ≤ max(absTol, relTol·|I|) or the subdivision limit is hit.
//
// The Legendre nodes and weights come from gonum's integrate/quad and are
// computed once per Rule; evaluation reuses them on every segment.
//
// Nested integration evaluates the innermost dimension for every node of the
// enclosing one; bounds are listed outermost first. The first error raised
// by any inner integral aborts the whole integration.
//
// Errors:
//   - ErrInvalidBounds: NaN bounds, or min > max.
//   - ErrNonFinite:     the integrand returned NaN or ±Inf.
//   - ErrNotConverged:  tolerance not met within the subdivision limit; the
//     best estimate is still returned alongside the error.
package quadrature
