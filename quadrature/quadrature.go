package quadrature

import (
	"container/heap"
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// Interval is a closed integration range; either end may be infinite.
type Interval struct {
	Min, Max float64
}

// Rule is a configured adaptive integrator. It is read-only after New and
// safe for concurrent use; every call keeps its own segment heap.
type Rule struct {
	opts    Options
	nodes   []float64 // Legendre nodes on [−1, 1]
	weights []float64
}

// New builds a Rule and its Legendre node table.
func New(opts ...Option) *Rule {
	o := gatherOptions(opts)
	r := &Rule{
		opts:    o,
		nodes:   make([]float64, o.order),
		weights: make([]float64, o.order),
	}
	quad.Legendre{}.FixedLocations(r.nodes, r.weights, -1, 1)

	return r
}

// RelTol reports the configured relative tolerance.
func (r *Rule) RelTol() float64 { return r.opts.relTol }

// AbsTol reports the configured absolute tolerance.
func (r *Rule) AbsTol() float64 { return r.opts.absTol }

// Order reports the Gauss–Legendre order per segment.
func (r *Rule) Order() int { return r.opts.order }

// MaxSubdivisions reports the bisection limit of each 1-D integral.
func (r *Rule) MaxSubdivisions() int { return r.opts.maxSubdivisions }

// Integrate returns ∫ f(x) dx over [min, max].
func (r *Rule) Integrate(f func(float64) float64, min, max float64) (float64, error) {
	if math.IsNaN(min) || math.IsNaN(max) || min > max {
		return 0, fmt.Errorf("%w: [%v, %v]", ErrInvalidBounds, min, max)
	}
	if min == max {
		return 0, nil
	}

	lowInf, highInf := math.IsInf(min, -1), math.IsInf(max, 1)
	switch {
	case lowInf && highInf:
		left, err := r.Integrate(f, min, 0)
		if err != nil {
			return left, err
		}
		right, err := r.Integrate(f, 0, max)

		return left + right, err
	case highInf:
		return r.adapt(func(t float64) float64 {
			s := 1.0 - t
			return f(min+t/s) / (s * s)
		}, 0, 1)
	case lowInf:
		return r.adapt(func(t float64) float64 {
			s := 1.0 - t
			return f(max-t/s) / (s * s)
		}, 0, 1)
	default:
		return r.adapt(f, min, max)
	}
}

// IntegrateND returns the nested integral of f over the box given by bounds,
// outermost dimension first. f receives a slice it must not retain.
func (r *Rule) IntegrateND(f func(x []float64) float64, bounds []Interval) (float64, error) {
	if len(bounds) == 0 {
		return 0, fmt.Errorf("%w: no dimensions", ErrInvalidBounds)
	}
	x := make([]float64, len(bounds))

	var innerErr error
	var level func(k int) (float64, error)
	level = func(k int) (float64, error) {
		if k == len(bounds)-1 {
			return r.Integrate(func(v float64) float64 {
				x[k] = v
				return f(x)
			}, bounds[k].Min, bounds[k].Max)
		}

		return r.Integrate(func(v float64) float64 {
			if innerErr != nil {
				return 0
			}
			x[k] = v
			inner, err := level(k + 1)
			if err != nil {
				innerErr = err
				return 0
			}
			return inner
		}, bounds[k].Min, bounds[k].Max)
	}

	value, err := level(0)
	if innerErr != nil {
		return value, innerErr
	}

	return value, err
}

// gauss applies the n-point rule to [a, b].
func (r *Rule) gauss(f func(float64) float64, a, b float64) (float64, error) {
	half, mid := 0.5*(b-a), 0.5*(a+b)
	sum := 0.0
	for i, node := range r.nodes {
		v := f(mid + half*node)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("%w: f(%v) = %v", ErrNonFinite, mid+half*node, v)
		}
		sum += r.weights[i] * v
	}

	return half * sum, nil
}

// segment is one bisection cell with its refined value and error estimate.
type segment struct {
	a, b        float64
	left, right float64 // G on the two halves
	err         float64
}

func (s segment) value() float64 { return s.left + s.right }

type segmentHeap []segment

func (h segmentHeap) Len() int            { return len(h) }
func (h segmentHeap) Less(i, j int) bool  { return h[i].err > h[j].err }
func (h segmentHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *segmentHeap) Push(x interface{}) { *h = append(*h, x.(segment)) }
func (h *segmentHeap) Pop() interface{} {
	old := *h
	n := len(old)
	s := old[n-1]
	*h = old[:n-1]
	return s
}

// refine splits [a, b] whose coarse estimate is known.
func (r *Rule) refine(f func(float64) float64, a, b, coarse float64) (segment, error) {
	m := 0.5 * (a + b)
	left, err := r.gauss(f, a, m)
	if err != nil {
		return segment{}, err
	}
	right, err := r.gauss(f, m, b)
	if err != nil {
		return segment{}, err
	}

	return segment{a: a, b: b, left: left, right: right, err: math.Abs(left + right - coarse)}, nil
}

// adapt is the globally adaptive loop over a finite interval.
func (r *Rule) adapt(f func(float64) float64, a, b float64) (float64, error) {
	// Stage 1: seed with the whole interval.
	coarse, err := r.gauss(f, a, b)
	if err != nil {
		return 0, err
	}
	first, err := r.refine(f, a, b, coarse)
	if err != nil {
		return 0, err
	}
	h := &segmentHeap{first}
	total, errSum := first.value(), first.err

	// Stage 2: bisect the worst segment until the global error is acceptable.
	for i := 0; ; i++ {
		if errSum <= math.Max(r.opts.absTol, r.opts.relTol*math.Abs(total)) {
			return total, nil
		}
		if i >= r.opts.maxSubdivisions {
			return total, fmt.Errorf("%w: error %.3g after %d subdivisions", ErrNotConverged, errSum, i)
		}

		worst := heap.Pop(h).(segment)
		m := 0.5 * (worst.a + worst.b)
		if m <= worst.a || m >= worst.b {
			// Interval no longer representable; accept what we have.
			return total, nil
		}
		lo, err := r.refine(f, worst.a, m, worst.left)
		if err != nil {
			return total, err
		}
		hi, err := r.refine(f, m, worst.b, worst.right)
		if err != nil {
			return total, err
		}
		heap.Push(h, lo)
		heap.Push(h, hi)

		total += lo.value() + hi.value() - worst.value()
		errSum += lo.err + hi.err - worst.err
	}
}
