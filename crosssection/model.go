package crosssection

import "math"

// Model maps a kinetic energy [eV] to a cross section [m²] (or, for NRL,
// the electron temperature [eV] to a rate coefficient [m³/s]).
type Model interface {
	Evaluate(energy float64) float64
}

// Func adapts an ordinary function to Model.
type Func func(energy float64) float64

// Evaluate calls f(energy).
func (f Func) Evaluate(energy float64) float64 { return f(energy) }

// Zero is the identically vanishing cross section.
var Zero Model = Func(func(float64) float64 { return 0 })

// EvaluateAll applies m to every energy and returns a new slice.
func EvaluateAll(m Model, energies []float64) []float64 {
	out := make([]float64, len(energies))
	for i, e := range energies {
		out[i] = m.Evaluate(e)
	}

	return out
}

// Scaled returns the model k·m.
func Scaled(m Model, k float64) Model {
	return Func(func(energy float64) float64 { return k * m.Evaluate(energy) })
}

// nanToZero is the shared NaN policy of the analytic models.
func nanToZero(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}

	return v
}

// Thresholded restricts m to energies above threshold and is 0 elsewhere.
// Below B the BEB formula grows like ln t/t², so integrals over all impact
// energies must use it through Thresholded.
func Thresholded(m Model, threshold float64) Model {
	return Func(func(energy float64) float64 {
		if energy <= threshold {
			return 0
		}
		return m.Evaluate(energy)
	})
}
