package crosssection

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sibeira/species"
)

// NRL is the plasma-formulary electron-impact ionisation rate,
//
//	k(Tₑ) = 1e-11·sqrt(t)/B^1.5/(6 + t)·exp(−1/t),   t = Tₑ/B,
//
// in m³/s. Evaluate takes the electron temperature [eV], not an impact energy.
type NRL struct {
	b float64
}

// NewNRL resolves the binding energy of symbol at ionisationLevel.
func NewNRL(symbol string, ionisationLevel int) (*NRL, error) {
	ionised, err := ionisedFor(ionisationLevel)
	if err != nil {
		return nil, err
	}
	c, err := species.Lookup(symbol, ionised)
	if err != nil {
		return nil, fmt.Errorf("crosssection: NRL: %w", err)
	}

	return &NRL{b: c.B}, nil
}

// Evaluate returns the rate coefficient at electron temperature [eV].
func (r *NRL) Evaluate(temperature float64) float64 {
	t := temperature / r.b

	return nanToZero(1e-11 * math.Sqrt(t) / math.Pow(r.b, 1.5) / (6.0 + t) * math.Exp(-1.0/t))
}

// NRLRate is the one-shot form of NewNRL(...).Evaluate(temperature).
func NRLRate(symbol string, ionisationLevel int, temperature float64) (float64, error) {
	r, err := NewNRL(symbol, ionisationLevel)
	if err != nil {
		return 0, err
	}

	return r.Evaluate(temperature), nil
}
