package integrator

import (
	"math"

	"github.com/katalvlaran/sibeira/quadrature"
)

// DefaultSecondaryWeight multiplies the secondary cross section.
const DefaultSecondaryWeight = 2.0

const panicSecondaryWeightInvalid = "integrator: WithSecondaryWeight: weight must be finite and ≥ 0"

// Option configures an Integrator.
type Option func(*options)

type options struct {
	rule            *quadrature.Rule
	cache           *NormalisationCache
	secondaryWeight float64
}

// WithRule sets the quadrature rule used for every integral.
func WithRule(r *quadrature.Rule) Option {
	if r == nil {
		panic("integrator: WithRule: nil rule")
	}

	return func(o *options) { o.rule = r }
}

// WithQuadrature builds the quadrature rule from quadrature options.
func WithQuadrature(opts ...quadrature.Option) Option {
	r := quadrature.New(opts...)

	return func(o *options) { o.rule = r }
}

// WithNormalisationCache shares a normalisation cache.
func WithNormalisationCache(c *NormalisationCache) Option {
	if c == nil {
		panic("integrator: WithNormalisationCache: nil cache")
	}

	return func(o *options) { o.cache = c }
}

// WithSecondaryWeight sets the multiplier of the secondary cross section.
func WithSecondaryWeight(w float64) Option {
	if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
		panic(panicSecondaryWeightInvalid)
	}

	return func(o *options) { o.secondaryWeight = w }
}
