package quadrature

import "errors"

var (
	// ErrInvalidBounds indicates NaN limits or min > max.
	ErrInvalidBounds = errors.New("quadrature: invalid integration bounds")

	// ErrNonFinite indicates that the integrand produced NaN or ±Inf.
	ErrNonFinite = errors.New("quadrature: integrand is not finite")

	// ErrNotConverged indicates that the tolerance was not reached within
	// the subdivision limit.
	ErrNotConverged = errors.New("quadrature: tolerance not reached")
)
