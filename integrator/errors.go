package integrator

import "errors"

var (
	// ErrInvalidReaction indicates an unrecognised reaction name or target.
	ErrInvalidReaction = errors.New("integrator: invalid reaction")

	// ErrInvalidDimension indicates an integration dimension outside {1,2,3},
	// or one that does not match the target (electron: 1, ion: 2 or 3).
	ErrInvalidDimension = errors.New("integrator: invalid dimension")

	// ErrInvalidInput indicates a bad temperature, beam speed or cross section.
	ErrInvalidInput = errors.New("integrator: invalid input")
)
