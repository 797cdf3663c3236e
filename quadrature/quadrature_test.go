package quadrature_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/sibeira/quadrature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

func TestIntegrate_Finite(t *testing.T) {
	r := quadrature.New()

	v, err := r.Integrate(math.Sin, 0, math.Pi)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, v, tol)

	v, err = r.Integrate(func(x float64) float64 { return x * x }, -1, 2)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, v, tol)

	v, err = r.Integrate(math.Sin, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v, "empty interval")
}

func TestIntegrate_HalfInfinite(t *testing.T) {
	r := quadrature.New()

	v, err := r.Integrate(func(x float64) float64 { return math.Exp(-x) }, 0, math.Inf(1))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, v, 1e-8)

	v, err = r.Integrate(func(x float64) float64 { return math.Exp(x) }, math.Inf(-1), 0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, v, 1e-8)
}

func TestIntegrate_Infinite(t *testing.T) {
	r := quadrature.New()

	v, err := r.Integrate(func(x float64) float64 { return math.Exp(-x * x) }, math.Inf(-1), math.Inf(1))
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(math.Pi), v, 1e-8)
}

// TestIntegrate_Kink needs real adaptivity: the derivative jumps at 1/3.
func TestIntegrate_Kink(t *testing.T) {
	r := quadrature.New()

	v, err := r.Integrate(func(x float64) float64 { return math.Abs(x - 1.0/3.0) }, 0, 1)
	require.NoError(t, err)
	assert.InDelta(t, 5.0/18.0, v, 1e-8)
}

func TestIntegrate_Errors(t *testing.T) {
	r := quadrature.New()

	_, err := r.Integrate(math.Sin, 2, 1)
	assert.ErrorIs(t, err, quadrature.ErrInvalidBounds)

	_, err = r.Integrate(math.Sin, math.NaN(), 1)
	assert.ErrorIs(t, err, quadrature.ErrInvalidBounds)

	_, err = r.Integrate(func(float64) float64 { return math.NaN() }, 0, 1)
	assert.ErrorIs(t, err, quadrature.ErrNonFinite)

	strict := quadrature.New(quadrature.WithMaxSubdivisions(1), quadrature.WithRelTol(1e-15))
	v, err := strict.Integrate(func(x float64) float64 { return math.Sqrt(math.Abs(x - 0.3)) }, 0, 1)
	assert.ErrorIs(t, err, quadrature.ErrNotConverged)
	assert.InDelta(t, 0.5, v, 0.05, "best estimate is still returned")
}

func TestIntegrateND(t *testing.T) {
	r := quadrature.New()

	v, err := r.IntegrateND(func(x []float64) float64 { return x[0] * x[1] },
		[]quadrature.Interval{{Min: 0, Max: 1}, {Min: 0, Max: 1}})
	require.NoError(t, err)
	assert.InDelta(t, 0.25, v, tol)

	// Maxwell speed pdf over v, times the two angle ranges.
	maxwell := func(x []float64) float64 {
		v := x[0]
		return math.Sqrt(2/math.Pi) * v * v * math.Exp(-v*v/2)
	}
	v, err = r.IntegrateND(maxwell, []quadrature.Interval{
		{Min: 0, Max: math.Inf(1)},
		{Min: -math.Pi, Max: math.Pi},
		{Min: -math.Pi / 2, Max: math.Pi / 2},
	})
	require.NoError(t, err)
	assert.InDelta(t, 2*math.Pi*math.Pi, v, 1e-6)
}

func TestIntegrateND_Errors(t *testing.T) {
	r := quadrature.New()

	_, err := r.IntegrateND(func([]float64) float64 { return 1 }, nil)
	assert.ErrorIs(t, err, quadrature.ErrInvalidBounds)

	_, err = r.IntegrateND(func(x []float64) float64 {
		if x[1] > 0.5 {
			return math.Inf(1)
		}
		return 1
	}, []quadrature.Interval{{Min: 0, Max: 1}, {Min: 0, Max: 1}})
	assert.ErrorIs(t, err, quadrature.ErrNonFinite, "inner failure aborts the outer integral")
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { quadrature.WithRelTol(0) })
	assert.Panics(t, func() { quadrature.WithAbsTol(-1) })
	assert.Panics(t, func() { quadrature.WithOrder(1) })
	assert.Panics(t, func() { quadrature.WithMaxSubdivisions(0) })
	assert.Equal(t, 1e-6, quadrature.New(quadrature.WithRelTol(1e-6)).RelTol())
}

func TestRule_Accessors(t *testing.T) {
	r := quadrature.New()
	assert.Equal(t, quadrature.DefaultRelTol, r.RelTol())
	assert.Equal(t, quadrature.DefaultAbsTol, r.AbsTol())
	assert.Equal(t, quadrature.DefaultOrder, r.Order())
	assert.Equal(t, quadrature.DefaultMaxSubdivisions, r.MaxSubdivisions())

	r = quadrature.New(quadrature.WithAbsTol(1e-12), quadrature.WithOrder(7), quadrature.WithMaxSubdivisions(50))
	assert.Equal(t, 1e-12, r.AbsTol())
	assert.Equal(t, 7, r.Order())
	assert.Equal(t, 50, r.MaxSubdivisions())
}
