package integrator_test

import (
	"math"
	"sync"
	"testing"

	"github.com/katalvlaran/sibeira/crosssection"
	"github.com/katalvlaran/sibeira/integrator"
	"github.com/katalvlaran/sibeira/physconst"
	"github.com/katalvlaran/sibeira/quadrature"
	"github.com/katalvlaran/sibeira/species"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"
)

// fast trades precision for speed in the nested 3-D tests.
func fast() *integrator.Integrator {
	return integrator.New(integrator.WithQuadrature(quadrature.WithRelTol(1e-7)))
}

// inverseSpeed returns σ(E) = c/v for a particle of the given mass.
func inverseSpeed(c, mass float64) crosssection.Model {
	return crosssection.Func(func(energy float64) float64 {
		return c / math.Sqrt(2*energy*physconst.ElementaryCharge/mass)
	})
}

var one = crosssection.Func(func(float64) float64 { return 1 })

func TestNormalisation(t *testing.T) {
	in := fast()

	cases := []struct {
		dimension int
		want      float64
	}{
		{1, 1},
		{2, 2 * math.Pi},
		{3, 2 * math.Pi * math.Pi},
	}
	for _, tc := range cases {
		got, err := in.Normalisation(tc.dimension)
		require.NoError(t, err)
		assert.InDelta(t, tc.want, got, 1e-4, "dimension %d", tc.dimension)
	}

	_, err := in.Normalisation(4)
	assert.ErrorIs(t, err, integrator.ErrInvalidDimension)
	_, err = in.Normalisation(0)
	assert.ErrorIs(t, err, integrator.ErrInvalidDimension)
}

func TestNormalisationCache_Reuse(t *testing.T) {
	cache := integrator.NewNormalisationCache(8)
	a := integrator.New(integrator.WithNormalisationCache(cache))
	b := integrator.New(integrator.WithNormalisationCache(cache))

	first, err := a.Normalisation(1)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.Len())

	second, err := b.Normalisation(1)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, cache.Len(), "same tolerance and dimension share an entry")

	c := integrator.New(
		integrator.WithNormalisationCache(cache),
		integrator.WithQuadrature(quadrature.WithRelTol(1e-6)),
	)
	_, err = c.Normalisation(1)
	require.NoError(t, err)
	assert.Equal(t, 2, cache.Len())

	for i, opt := range []quadrature.Option{
		quadrature.WithOrder(6),
		quadrature.WithAbsTol(1e-12),
		quadrature.WithMaxSubdivisions(50),
	} {
		in := integrator.New(integrator.WithNormalisationCache(cache), integrator.WithQuadrature(opt))
		_, err = in.Normalisation(1)
		require.NoError(t, err)
		assert.Equal(t, 3+i, cache.Len(), "each rule setting gets its own entry")
	}
}

func TestIntegrator_ConcurrentUse(t *testing.T) {
	in := integrator.New()
	want, err := in.Coefficient(integrator.Spec{
		Dimension:           1,
		Target:              integrator.Electron,
		CrossSection:        one,
		ElectronTemperature: 100,
	})
	require.NoError(t, err)

	var wg sync.WaitGroup
	got := make([]float64, 8)
	errs := make([]error, 8)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i], errs[i] = in.Coefficient(integrator.Spec{
				Dimension:           1,
				Target:              integrator.Electron,
				CrossSection:        one,
				ElectronTemperature: 100,
			})
		}(i)
	}
	wg.Wait()

	for i := range got {
		require.NoError(t, errs[i])
		assert.Equal(t, want, got[i])
	}
}

func TestCoefficient_ElectronMeanSpeed(t *testing.T) {
	const temperature = 100.0
	got, err := integrator.New().Coefficient(integrator.Spec{
		Dimension:           1,
		Target:              integrator.Electron,
		CrossSection:        one,
		ElectronTemperature: temperature,
	})
	require.NoError(t, err)

	want := math.Sqrt(8 * physconst.ElementaryCharge * temperature / math.Pi / physconst.ElectronMass)
	assert.InEpsilon(t, want, got, 1e-5)
}

func TestCoefficient_InverseSpeed(t *testing.T) {
	const c = 3.5e-14
	in := fast()

	got, err := in.Coefficient(integrator.Spec{
		Dimension:           1,
		Target:              integrator.Electron,
		CrossSection:        inverseSpeed(c, physconst.ElectronMass),
		ElectronTemperature: 50,
	})
	require.NoError(t, err)
	assert.InEpsilon(t, c, got, 1e-4)

	md := species.DeuteriumMass()
	for _, dim := range []int{2, 3} {
		got, err = in.Coefficient(integrator.Spec{
			Dimension:           dim,
			Target:              integrator.Ion,
			CrossSection:        inverseSpeed(c, md),
			ElectronTemperature: 200,
			BeamSpeed:           4e5,
		})
		require.NoError(t, err)
		assert.InEpsilon(t, c, got, 1e-4, "dimension %d", dim)
	}
}

func TestCoefficient_IonAtRestBeam(t *testing.T) {
	const temperature = 100.0
	got, err := fast().Coefficient(integrator.Spec{
		Dimension:           2,
		Target:              integrator.Ion,
		CrossSection:        one,
		ElectronTemperature: temperature,
	})
	require.NoError(t, err)

	want := math.Sqrt(8 * physconst.ElementaryCharge * temperature / math.Pi / species.DeuteriumMass())
	assert.InEpsilon(t, want, got, 1e-5)
}

// TestCoefficient_FastBeam: with a beam far faster than the ions the
// relative speed is the beam speed.
func TestCoefficient_FastBeam(t *testing.T) {
	const vb = 1e8
	got, err := fast().Coefficient(integrator.Spec{
		Dimension:           2,
		Target:              integrator.Ion,
		CrossSection:        one,
		ElectronTemperature: 1,
		BeamSpeed:           vb,
	})
	require.NoError(t, err)
	assert.InEpsilon(t, vb, got, 1e-3)
}

func TestCoefficient_SecondaryWeight(t *testing.T) {
	spec := integrator.Spec{
		Dimension:           2,
		Target:              integrator.Ion,
		CrossSection:        crosssection.Zero,
		Secondary:           one,
		ElectronTemperature: 100,
		BeamSpeed:           2e5,
	}

	in := fast()
	assert.Equal(t, integrator.DefaultSecondaryWeight, in.SecondaryWeight())
	doubled, err := in.Coefficient(spec)
	require.NoError(t, err)

	single, err := integrator.New(
		integrator.WithQuadrature(quadrature.WithRelTol(1e-7)),
		integrator.WithSecondaryWeight(1),
	).Coefficient(spec)
	require.NoError(t, err)
	assert.InEpsilon(t, 2*single, doubled, 1e-9)

	none, err := integrator.New(integrator.WithSecondaryWeight(0)).Coefficient(spec)
	require.NoError(t, err)
	assert.Equal(t, 0.0, none)

	assert.Panics(t, func() { integrator.WithSecondaryWeight(-1) })
	assert.Panics(t, func() { integrator.WithSecondaryWeight(math.NaN()) })
}

func TestCoefficient_Errors(t *testing.T) {
	in := fast()
	base := integrator.Spec{
		Dimension:           1,
		Target:              integrator.Electron,
		CrossSection:        one,
		ElectronTemperature: 10,
	}

	cases := []struct {
		name   string
		mutate func(*integrator.Spec)
		want   error
	}{
		{"electron in 2D", func(s *integrator.Spec) { s.Dimension = 2 }, integrator.ErrInvalidDimension},
		{"ion in 1D", func(s *integrator.Spec) { s.Target = integrator.Ion }, integrator.ErrInvalidDimension},
		{"ion in 4D", func(s *integrator.Spec) { s.Target, s.Dimension = integrator.Ion, 4 }, integrator.ErrInvalidDimension},
		{"unknown target", func(s *integrator.Spec) { s.Target = 7 }, integrator.ErrInvalidReaction},
		{"nil cross section", func(s *integrator.Spec) { s.CrossSection = nil }, integrator.ErrInvalidInput},
		{"zero temperature", func(s *integrator.Spec) { s.ElectronTemperature = 0 }, integrator.ErrInvalidInput},
		{"NaN temperature", func(s *integrator.Spec) { s.ElectronTemperature = math.NaN() }, integrator.ErrInvalidInput},
		{"negative beam", func(s *integrator.Spec) { s.BeamSpeed = -1 }, integrator.ErrInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			spec := base
			tc.mutate(&spec)
			_, err := in.Coefficient(spec)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParseReaction(t *testing.T) {
	got, err := integrator.ParseReaction("electron impact ionisation")
	require.NoError(t, err)
	assert.Equal(t, integrator.Electron, got)

	got, err = integrator.ParseReaction(" Charge Exchange ")
	require.NoError(t, err)
	assert.Equal(t, integrator.Ion, got)
	assert.Equal(t, integrator.ReactionChargeExchange, got.String())

	_, err = integrator.ParseReaction("recombination")
	assert.ErrorIs(t, err, integrator.ErrInvalidReaction)
}

func TestTargetMass(t *testing.T) {
	m, err := integrator.TargetMass(integrator.Electron)
	require.NoError(t, err)
	assert.Equal(t, physconst.ElectronMass, m)

	m, err = integrator.TargetMass(integrator.Ion)
	require.NoError(t, err)
	assert.Equal(t, species.DeuteriumMass(), m)

	_, err = integrator.TargetMass(0)
	assert.ErrorIs(t, err, integrator.ErrInvalidReaction)
}

func TestThirdSideAndImpactEnergy(t *testing.T) {
	assert.InDelta(t, 5.0, integrator.ThirdSide(3, 4, 0), 1e-12)
	assert.InDelta(t, 7.0, integrator.ThirdSide(3, 4, -1), 1e-12)
	assert.Equal(t, 0.0, integrator.ThirdSide(2, 2, 1))
	assert.Equal(t, 0.0, integrator.ThirdSide(2, 2, 1+1e-15), "clamped at zero")

	v := math.Sqrt(2 * 100 * physconst.ElementaryCharge / physconst.ElectronMass)
	assert.InEpsilon(t, 100.0, integrator.ImpactEnergy(physconst.ElectronMass, v), 1e-12)
}

func TestMaxwellVelocityDensity(t *testing.T) {
	const temperature = 100.0 // [eV]
	m := physconst.ElectronMass
	vth := math.Sqrt(temperature * physconst.ElementaryCharge / m)

	// Integrate in thermal-speed units, v = x·v_th.
	total, err := quadrature.New().Integrate(func(x float64) float64 {
		v := x * vth
		return 4 * math.Pi * v * v * integrator.MaxwellVelocityDensity(m, temperature, v) * vth
	}, 0, math.Inf(1))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, total, 1e-8)

	chi := distuv.Chi{K: 3}
	for _, x := range []float64{0.1, 1, 1.7, 4} {
		v := x * vth
		got := 4 * math.Pi * v * v * integrator.MaxwellVelocityDensity(m, temperature, v) * vth
		assert.InEpsilon(t, chi.Prob(x), got, 1e-10, "x = %v", x)
	}
}
