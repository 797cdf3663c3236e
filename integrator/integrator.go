package integrator

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sibeira/physconst"
	"github.com/katalvlaran/sibeira/quadrature"
	"github.com/katalvlaran/sibeira/species"
	"gonum.org/v1/gonum/stat/distuv"
)

// Integrator computes rate coefficients. It is read-only after New apart
// from the normalisation cache, which locks internally, so one Integrator
// may be shared between goroutines.
type Integrator struct {
	rule            *quadrature.Rule
	cache           *NormalisationCache
	secondaryWeight float64
	maxwell         distuv.Chi
	deuteriumMass   float64
}

// New returns an Integrator with the default quadrature rule, a private
// normalisation cache and secondary weight 2 unless overridden.
func New(opts ...Option) *Integrator {
	o := options{secondaryWeight: DefaultSecondaryWeight}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rule == nil {
		o.rule = quadrature.New()
	}
	if o.cache == nil {
		o.cache = NewNormalisationCache(DefaultCacheSize)
	}

	return &Integrator{
		rule:            o.rule,
		cache:           o.cache,
		secondaryWeight: o.secondaryWeight,
		maxwell:         distuv.Chi{K: 3},
		deuteriumMass:   species.DeuteriumMass(),
	}
}

// SecondaryWeight reports the multiplier of the secondary cross section.
func (in *Integrator) SecondaryWeight() float64 { return in.secondaryWeight }

// Coefficient returns the rate coefficient [m³/s] described by spec:
// the integral of the weighted integrand divided by the normalisation.
func (in *Integrator) Coefficient(spec Spec) (float64, error) {
	if err := spec.validate(); err != nil {
		return 0, err
	}
	norm, err := in.Normalisation(spec.Dimension)
	if err != nil {
		return 0, err
	}
	value, err := in.rule.IntegrateND(in.integrand(spec), bounds(spec.Dimension))
	if err != nil {
		return 0, fmt.Errorf("integrator: %v %dD: %w", spec.Target, spec.Dimension, err)
	}

	return value / norm, nil
}

// Normalisation returns the integral of the Maxwell pdf over the domain of
// the given dimension (1, 2π, 2π²), memoised per dimension.
func (in *Integrator) Normalisation(dimension int) (float64, error) {
	if dimension < 1 || dimension > 3 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidDimension, dimension)
	}
	key := normKey{
		dimension:       dimension,
		relTol:          in.rule.RelTol(),
		absTol:          in.rule.AbsTol(),
		order:           in.rule.Order(),
		maxSubdivisions: in.rule.MaxSubdivisions(),
	}

	return in.cache.getOrCompute(key, func() (float64, error) {
		return in.rule.IntegrateND(func(x []float64) float64 {
			return in.maxwell.Prob(x[0])
		}, bounds(dimension))
	})
}

// integrand builds the weighted, velocity-composed integrand of spec.
func (in *Integrator) integrand(spec Spec) func(x []float64) float64 {
	sigma := func(energy float64) float64 {
		s := spec.CrossSection.Evaluate(energy)
		if spec.Secondary != nil {
			s += in.secondaryWeight * spec.Secondary.Evaluate(energy)
		}
		return s
	}

	if spec.Target == Electron {
		v0 := math.Sqrt(spec.ElectronTemperature * physconst.ElementaryCharge / physconst.ElectronMass)
		return func(x []float64) float64 {
			velocity := x[0] * v0
			return in.maxwell.Prob(x[0]) * velocity * sigma(impactEnergy(physconst.ElectronMass, velocity))
		}
	}

	v1 := math.Sqrt(spec.ElectronTemperature * physconst.ElementaryCharge / in.deuteriumMass)
	vb := spec.BeamSpeed
	return func(x []float64) float64 {
		cosine := math.Cos(x[1])
		if len(x) == 3 {
			cosine *= math.Cos(x[2])
		}
		velocity := thirdSide(x[0]*v1, vb, cosine)
		if velocity == 0 {
			// No flux; σ may be singular here.
			return 0
		}
		return in.maxwell.Prob(x[0]) * velocity * sigma(impactEnergy(in.deuteriumMass, velocity))
	}
}

// MaxwellVelocityDensity is the isotropic Maxwellian in velocity space [s³/m³]
// for a particle of mass [kg] at temperature [eV], evaluated at speed v [m/s]:
//
//	f(v) = (m/(2π·kT))^(3/2) · exp(−m·v²/(2·kT)),  kT = e·T
//
// It integrates to 1 over ℝ³. The rate integrals use the equivalent speed pdf
// in units of the thermal speed, 4π·v²·f(v)·v_th = Chi₃(v/v_th).
func MaxwellVelocityDensity(mass, temperature, v float64) float64 {
	a := mass / (2.0 * temperature * physconst.ElementaryCharge)

	return math.Pow(a/math.Pi, 1.5) * math.Exp(-a*v*v)
}

// ThirdSide is the law of cosines: the side opposite the angle whose cosine is given.
func ThirdSide(a, b, cosine float64) float64 { return thirdSide(a, b, cosine) }

func thirdSide(a, b, cosine float64) float64 {
	return math.Sqrt(math.Max(0, a*a+b*b-2*a*b*cosine))
}

// ImpactEnergy returns ½mv²/e [eV].
func ImpactEnergy(mass, velocity float64) float64 { return impactEnergy(mass, velocity) }

func impactEnergy(mass, velocity float64) float64 {
	return 0.5 * mass * velocity * velocity / physconst.ElementaryCharge
}

// bounds lists the integration box, speed first then the angles.
func bounds(dimension int) []quadrature.Interval {
	b := []quadrature.Interval{{Min: 0, Max: math.Inf(1)}}
	if dimension >= 2 {
		b = append(b, quadrature.Interval{Min: -math.Pi, Max: math.Pi})
	}
	if dimension >= 3 {
		b = append(b, quadrature.Interval{Min: -math.Pi / 2, Max: math.Pi / 2})
	}

	return b
}
