package spline

import (
	"fmt"
	"math"
)

// LogLog is a Cubic fitted to (ln x, ln y). The source points are kept for
// inspection and re-fitting.
type LogLog struct {
	Energies []float64 `json:"energies" yaml:"energies"`
	Rates    []float64 `json:"rates" yaml:"rates"`
	Fit      Cubic     `json:"fit" yaml:"fit"`
}

// NewLogLog fits the log-log spline of rates over energies. Both must be
// strictly positive.
func NewLogLog(energies, rates []float64) (*LogLog, error) {
	if len(energies) != len(rates) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(energies), len(rates))
	}
	lx := make([]float64, len(energies))
	ly := make([]float64, len(rates))
	for i := range energies {
		if !(energies[i] > 0) || !(rates[i] > 0) {
			return nil, fmt.Errorf("%w: (%v, %v) at %d", ErrNonPositive, energies[i], rates[i], i)
		}
		lx[i] = math.Log(energies[i])
		ly[i] = math.Log(rates[i])
	}

	fit, err := NotAKnot(lx, ly)
	if err != nil {
		return nil, err
	}

	return &LogLog{
		Energies: append([]float64(nil), energies...),
		Rates:    append([]float64(nil), rates...),
		Fit:      *fit,
	}, nil
}

// Evaluate returns exp(S(ln x)), and 0 for x == 0.
func (s *LogLog) Evaluate(x float64) float64 {
	if x == 0 {
		return 0
	}

	return math.Exp(s.Fit.Predict(math.Log(x)))
}

// EvaluateAll applies Evaluate element-wise.
func (s *LogLog) EvaluateAll(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = s.Evaluate(x)
	}

	return out
}
