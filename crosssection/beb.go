package crosssection

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sibeira/physconst"
	"github.com/katalvlaran/sibeira/species"
)

// BEB is the binary-encounter-Bethe ionisation cross section of one orbital.
//
// With t = E/B and u = U/B,
//
//	σ(E) = S/(t + (u+1)/n) · [ Q·ln t/2·(1 − t⁻²) + (2 − Q)·(1 − 1/t − ln t/(t+1)) ]
//	S    = 4π·a0²·N·(Ry/B)²
//
// The constants are resolved once; Evaluate is pure.
type BEB struct {
	constants species.Constants
	q         float64
	u         float64
	s         float64
	n         float64
}

// BEBOption tunes a BEB model.
type BEBOption func(*bebOptions)

type bebOptions struct {
	table    *species.Table
	withoutQ bool
}

// WithoutQ forces the shape factor Q = 1 (the simplified BEB form).
func WithoutQ() BEBOption {
	return func(o *bebOptions) { o.withoutQ = true }
}

// WithSpeciesTable resolves constants from t instead of the embedded table.
func WithSpeciesTable(t *species.Table) BEBOption {
	if t == nil {
		panic("crosssection: WithSpeciesTable: nil table")
	}

	return func(o *bebOptions) { o.table = t }
}

// NewBEB builds the BEB model of symbol at ionisationLevel (0 or 1).
func NewBEB(symbol string, ionisationLevel int, opts ...BEBOption) (*BEB, error) {
	o := bebOptions{table: species.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	ionised, err := ionisedFor(ionisationLevel)
	if err != nil {
		return nil, err
	}
	c, err := o.table.Lookup(symbol, ionised)
	if err != nil {
		return nil, fmt.Errorf("crosssection: BEB: %w", err)
	}

	q := c.Q
	if o.withoutQ {
		q = 1
	}
	ry := physconst.RydbergEnergy / c.B

	return &BEB{
		constants: c,
		q:         q,
		u:         c.U / c.B,
		s:         4.0 * math.Pi * physconst.BohrRadius * physconst.BohrRadius * float64(c.N) * ry * ry,
		n:         float64(c.PrincipalN),
	}, nil
}

// Constants returns the orbital constants the model was built from.
func (c *BEB) Constants() species.Constants { return c.constants }

// Threshold is the ionisation threshold B [eV].
func (c *BEB) Threshold() float64 { return c.constants.B }

// ReducedEnergy returns t = E/B.
func (c *BEB) ReducedEnergy(energy float64) float64 { return energy / c.constants.B }

// Evaluate returns σ(energy) [m²].
func (c *BEB) Evaluate(energy float64) float64 {
	t := energy / c.constants.B
	lnT := math.Log(t)
	bracket := c.q*lnT/2.0*(1.0-1.0/(t*t)) +
		(2.0-c.q)*(1.0-1.0/t-lnT/(t+1.0))

	return nanToZero(c.s / (t + (c.u+1.0)/c.n) * bracket)
}

func ionisedFor(level int) (bool, error) {
	switch level {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fmt.Errorf("%w: %d", ErrInvalidIonisationLevel, level)
	}
}
