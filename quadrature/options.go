package quadrature

import "math"

// Defaults.
const (
	// DefaultRelTol is the relative tolerance on the integral.
	DefaultRelTol = 1.49e-8

	// DefaultAbsTol is the absolute tolerance; 0 means relative only.
	DefaultAbsTol = 0.0

	// DefaultOrder is the number of Gauss–Legendre nodes per segment. It is
	// even so that no node sits on a segment midpoint.
	DefaultOrder = 10

	// DefaultMaxSubdivisions bounds the number of bisections per 1-D integral.
	DefaultMaxSubdivisions = 200
)

const (
	panicRelTolInvalid = "quadrature: WithRelTol: tolerance must be finite and > 0"
	panicAbsTolInvalid = "quadrature: WithAbsTol: tolerance must be finite and ≥ 0"
	panicOrderInvalid  = "quadrature: WithOrder: order must be ≥ 2"
	panicSubdivInvalid = "quadrature: WithMaxSubdivisions: limit must be ≥ 1"
)

// Option configures a Rule. Constructors panic on nonsensical values.
type Option func(*Options)

// Options is the resolved configuration of a Rule.
type Options struct {
	relTol          float64
	absTol          float64
	order           int
	maxSubdivisions int
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		relTol:          DefaultRelTol,
		absTol:          DefaultAbsTol,
		order:           DefaultOrder,
		maxSubdivisions: DefaultMaxSubdivisions,
	}
}

// WithRelTol sets the relative tolerance.
func WithRelTol(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicRelTolInvalid)
	}

	return func(o *Options) { o.relTol = tol }
}

// WithAbsTol sets the absolute tolerance.
func WithAbsTol(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicAbsTolInvalid)
	}

	return func(o *Options) { o.absTol = tol }
}

// WithOrder sets the Gauss–Legendre order per segment.
func WithOrder(n int) Option {
	if n < 2 {
		panic(panicOrderInvalid)
	}

	return func(o *Options) { o.order = n }
}

// WithMaxSubdivisions bounds the bisections of each 1-D integral.
func WithMaxSubdivisions(n int) Option {
	if n < 1 {
		panic(panicSubdivInvalid)
	}

	return func(o *Options) { o.maxSubdivisions = n }
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
