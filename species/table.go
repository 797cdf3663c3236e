package species

import (
	_ "embed"
	"fmt"
	"io"
	"sort"

	"github.com/katalvlaran/sibeira/physconst"
	"gopkg.in/yaml.v3"
)

//go:embed species.yaml
var embeddedTable []byte

// Table is a decoded orbital-constant table. The zero value is empty;
// use Default or Load to obtain one.
type Table struct {
	version int
	neutral map[string]row
	ion     map[string]row
}

var defaultTable = mustParse(embeddedTable)

// Default returns the table embedded in the package.
func Default() *Table { return defaultTable }

// Lookup resolves symbol in the embedded table. See Table.Lookup.
func Lookup(symbol string, ionised bool) (Constants, error) {
	return defaultTable.Lookup(symbol, ionised)
}

// Load decodes a species table in the species.yaml layout.
func Load(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("species: read table: %w", err)
	}

	return parse(data)
}

func parse(data []byte) (*Table, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadTable, err)
	}

	return &Table{version: doc.Version, neutral: doc.Neutral, ion: doc.Ion}, nil
}

func mustParse(data []byte) *Table {
	t, err := parse(data)
	if err != nil {
		panic(err)
	}

	return t
}

// Version reports the schema version written in the table.
func (t *Table) Version() int { return t.version }

// Symbols lists the species of the neutral (ionised=false) or ion table, sorted.
func (t *Table) Symbols(ionised bool) []string {
	src := t.neutral
	if ionised {
		src = t.ion
	}
	out := make([]string, 0, len(src))
	for s := range src {
		out = append(out, s)
	}
	sort.Strings(out)

	return out
}

// Lookup returns the filled constants of symbol from the neutral or ion table.
//
// Fill order (missing fields only): N=1, Q=1, n, U. For ions U is derived
// from the nuclear charge, (Z − 5/16)²·2·Ry, and a row without Z fails with
// ErrMissingCharge.
func (t *Table) Lookup(symbol string, ionised bool) (Constants, error) {
	src, kind := t.neutral, "neutral"
	if ionised {
		src, kind = t.ion, "ion"
	}
	r, ok := src[symbol]
	if !ok {
		return Constants{}, fmt.Errorf("%w: %q in %s table", ErrUnknownSpecies, symbol, kind)
	}

	c := Constants{Symbol: symbol, Ionised: ionised}

	// Stage 1: B is mandatory (eV or Rydberg units).
	switch {
	case r.B != nil:
		c.B = *r.B
	case r.BRydberg != nil:
		c.B = *r.BRydberg * physconst.RydbergEnergy
	default:
		return Constants{}, fmt.Errorf("%w: %q has no binding energy", ErrBadTable, symbol)
	}

	// Stage 2: fill N, Q, n in order.
	c.N = 1
	if r.N != nil {
		c.N = *r.N
	}
	c.Q = 1
	if r.Q != nil {
		c.Q = *r.Q
	}
	c.PrincipalN = principalN(r)

	// Stage 3: U.
	switch {
	case r.U != nil:
		c.U = *r.U
	case r.URydberg != nil:
		c.U = *r.URydberg * physconst.RydbergEnergy
	case !ionised:
		c.U = c.B
	case r.Z == nil:
		return Constants{}, fmt.Errorf("%w: %q", ErrMissingCharge, symbol)
	default:
		zEff := float64(*r.Z) - 5.0/16.0
		c.U = zEff * zEff * 2.0 * physconst.RydbergEnergy
	}

	return c, nil
}

// principalN applies the legacy rule: an explicit n wins; otherwise a
// principal quantum number of 2 collapses to 1, any other is used as given.
func principalN(r row) int {
	if r.PrincipalN != nil {
		return *r.PrincipalN
	}
	if r.PrincipalQuantumNumber == nil {
		return 1
	}
	if *r.PrincipalQuantumNumber == 2 {
		return 1
	}

	return *r.PrincipalQuantumNumber
}
