package spline

import "errors"

var (
	// ErrTooFewPoints indicates fewer than four knots.
	ErrTooFewPoints = errors.New("spline: at least 4 points are required")

	// ErrLengthMismatch indicates xs and ys of different lengths.
	ErrLengthMismatch = errors.New("spline: xs and ys differ in length")

	// ErrNotIncreasing indicates knots that are not strictly increasing.
	ErrNotIncreasing = errors.New("spline: knots must be strictly increasing")

	// ErrNonFinite indicates a NaN or infinite input value.
	ErrNonFinite = errors.New("spline: NaN or Inf in input")

	// ErrNonPositive indicates a value ≤ 0 where a logarithm is required.
	ErrNonPositive = errors.New("spline: log-log fit needs positive values")

	// ErrSingular indicates that the spline system could not be solved.
	ErrSingular = errors.New("spline: singular system")
)
