package spline

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Segment holds the polynomial y + b·d + c·d² + e·d³ with d = x − x_i.
type Segment struct {
	Y float64 `json:"y" yaml:"y"`
	B float64 `json:"b" yaml:"b"`
	C float64 `json:"c" yaml:"c"`
	D float64 `json:"d" yaml:"d"`
}

// Cubic is a piecewise cubic over Knots; Segments[i] covers [Knots[i], Knots[i+1]].
type Cubic struct {
	Knots    []float64 `json:"knots" yaml:"knots"`
	Segments []Segment `json:"segments" yaml:"segments"`
}

// NotAKnot fits the not-a-knot cubic spline through (xs, ys).
//
// Implementation:
//   - Stage 1: validate lengths, finiteness and strict ordering.
//   - Stage 2: assemble the n×n system for the knot second derivatives M:
//     two not-a-knot rows and n−2 continuity rows.
//   - Stage 3: solve with gonum/mat and convert M to per-segment coefficients.
func NotAKnot(xs, ys []float64) (*Cubic, error) {
	// Stage 1: validation.
	n := len(xs)
	if n != len(ys) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, n, len(ys))
	}
	if n < 4 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, n)
	}
	if !allFinite(xs) || !allFinite(ys) {
		return nil, ErrNonFinite
	}
	for i := 1; i < n; i++ {
		if xs[i] <= xs[i-1] {
			return nil, fmt.Errorf("%w: x[%d]=%v ≤ x[%d]=%v", ErrNotIncreasing, i, xs[i], i-1, xs[i-1])
		}
	}

	// Stage 2: assemble.
	h := make([]float64, n-1)
	slope := make([]float64, n-1)
	for i := range h {
		h[i] = xs[i+1] - xs[i]
		slope[i] = (ys[i+1] - ys[i]) / h[i]
	}
	a := mat.NewDense(n, n, nil)
	rhs := mat.NewVecDense(n, nil)

	a.Set(0, 0, h[1])
	a.Set(0, 1, -(h[0] + h[1]))
	a.Set(0, 2, h[0])
	for i := 1; i < n-1; i++ {
		a.Set(i, i-1, h[i-1])
		a.Set(i, i, 2*(h[i-1]+h[i]))
		a.Set(i, i+1, h[i])
		rhs.SetVec(i, 6*(slope[i]-slope[i-1]))
	}
	a.Set(n-1, n-3, h[n-2])
	a.Set(n-1, n-2, -(h[n-3] + h[n-2]))
	a.Set(n-1, n-1, h[n-3])

	// Stage 3: solve and convert.
	var m mat.VecDense
	if err := m.SolveVec(a, rhs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingular, err)
	}

	c := &Cubic{Knots: append([]float64(nil), xs...), Segments: make([]Segment, n-1)}
	for i := range c.Segments {
		mi, mj := m.AtVec(i), m.AtVec(i+1)
		c.Segments[i] = Segment{
			Y: ys[i],
			B: slope[i] - h[i]*(2*mi+mj)/6,
			C: mi / 2,
			D: (mj - mi) / (6 * h[i]),
		}
	}

	return c, nil
}

// Predict evaluates the spline at x, extending the end pieces outside the knots.
func (c *Cubic) Predict(x float64) float64 {
	i := sort.SearchFloat64s(c.Knots, x) - 1
	if i < 0 {
		i = 0
	}
	if last := len(c.Segments) - 1; i > last {
		i = last
	}
	s := c.Segments[i]
	d := x - c.Knots[i]

	return ((s.D*d+s.C)*d+s.B)*d + s.Y
}

func allFinite(v []float64) bool {
	if floats.HasNaN(v) {
		return false
	}
	for _, x := range v {
		if math.IsInf(x, 0) {
			return false
		}
	}

	return true
}
