package crosssection

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/sibeira/species"
)

// Tabata model constants.
const (
	// tabataSigma0 is the cross-section unit of the fit, 1e-16 cm².
	tabataSigma0 = 1e-20 // [m²]

	// tabataER is the reduced-energy scale of the fit.
	tabataER = 25.0 // [keV]
)

// Fit columns, in table order after "target".
var tabataColumns = []string{"Et", "a1", "a2", "a3", "a4", "a5", "a6", "a7", "a8"}

// Degree is the number of electrons captured by the plasma proton.
type Degree int

const (
	// Single electron capture.
	Single Degree = iota + 1
	// Double electron capture.
	Double
)

// String returns "single" or "double".
func (d Degree) String() string {
	switch d {
	case Single:
		return "single"
	case Double:
		return "double"
	default:
		return "degree(" + strconv.Itoa(int(d)) + ")"
	}
}

// ParseDegree accepts "single" or "double".
func ParseDegree(s string) (Degree, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single":
		return Single, nil
	case "double":
		return Double, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidDegree, s)
	}
}

// TabataFit holds one row of fit coefficients: Et [keV] and a1..a8.
type TabataFit struct {
	Et float64
	A  [8]float64
}

// TabataTable is a parsed tab-separated fit table of one capture degree,
// keyed by target species.
type TabataTable struct {
	degree  Degree
	columns map[string]bool
	rows    map[string]map[string]float64
}

// LoadTabataTable parses a tab-separated table of the given degree. The
// header row names a "target" column and the fit columns Et, a1..a8. Lines
// starting with '#' are comments; the literal "Infinity" parses to +Inf.
func LoadTabataTable(r io.Reader, degree Degree) (*TabataTable, error) {
	if degree != Single && degree != Double {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDegree, degree)
	}
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.Comment = '#'
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrMalformedTable, err)
	}
	targetCol := -1
	t := &TabataTable{degree: degree, columns: make(map[string]bool), rows: make(map[string]map[string]float64)}
	for i, name := range header {
		name = strings.TrimSpace(name)
		header[i] = name
		if name == "target" {
			targetCol = i
			continue
		}
		t.columns[name] = true
	}
	if targetCol < 0 {
		return nil, fmt.Errorf("%w: no target column", ErrMalformedTable)
	}

	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedTable, err)
		}
		row := make(map[string]float64, len(rec)-1)
		for i, cell := range rec {
			if i == targetCol {
				continue
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %s=%q: %v", ErrMalformedTable, header[i], cell, err)
			}
			row[header[i]] = v
		}
		t.rows[strings.TrimSpace(rec[targetCol])] = row
	}

	return t, nil
}

// OpenTabataTable loads the table file at path.
func OpenTabataTable(path string, degree Degree) (*TabataTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("crosssection: Tabata %s table: %w", degree, err)
	}
	defer f.Close()

	return LoadTabataTable(f, degree)
}

// Degree is the capture degree the table was loaded as.
func (t *TabataTable) Degree() Degree { return t.degree }

// Targets lists the target species of the table, sorted.
func (t *TabataTable) Targets() []string {
	out := make([]string, 0, len(t.rows))
	for s := range t.rows {
		out = append(out, s)
	}
	sort.Strings(out)

	return out
}

// WithoutColumn returns a copy of t with one fit column removed.
func (t *TabataTable) WithoutColumn(name string) *TabataTable {
	c := &TabataTable{degree: t.degree, columns: make(map[string]bool), rows: make(map[string]map[string]float64)}
	for k := range t.columns {
		if k != name {
			c.columns[k] = true
		}
	}
	for target, row := range t.rows {
		r := make(map[string]float64, len(row))
		for k, v := range row {
			if k != name {
				r[k] = v
			}
		}
		c.rows[target] = r
	}

	return c
}

// Fit resolves the coefficients of target.
//
// Errors:
//   - ErrInvalidTarget joined with species.ErrUnknownSpecies: no row for target.
//   - ErrBrokenDatabase: a fit column is missing.
func (t *TabataTable) Fit(target string) (TabataFit, error) {
	row, ok := t.rows[target]
	if !ok {
		return TabataFit{}, fmt.Errorf("%w: %w: %q", ErrInvalidTarget, species.ErrUnknownSpecies, target)
	}

	var values [9]float64
	for i, col := range tabataColumns {
		v, ok := row[col]
		if !ok {
			return TabataFit{}, fmt.Errorf("%w: column %s for %q", ErrBrokenDatabase, col, target)
		}
		values[i] = v
	}
	fit := TabataFit{Et: values[0]}
	copy(fit.A[:], values[1:])

	return fit, nil
}

// Tabata is the charge-exchange cross section of a fast target atom on a
// plasma proton, from the Tabata et al. (1988) analytic fit:
//
//	E1   = E/1000 − Et                       [keV]
//	f(x) = a1·(x/ER)^a2 / (1 + (x/a3)^(a2+a4) + (x/a5)^(a2+a6))
//	σ(E) = σ0·(f(E1) + a7·f(E1/a8))
//
// The (x/a3) term is dropped when a3 is infinite.
type Tabata struct {
	target string
	degree Degree
	fit    TabataFit
}

// NewTabata builds the model of target from table. No fit data ships with
// the package: a nil table fails with ErrNoTabataTable.
func NewTabata(table *TabataTable, target string) (*Tabata, error) {
	if table == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoTabataTable, target)
	}
	fit, err := table.Fit(target)
	if err != nil {
		return nil, err
	}

	return &Tabata{target: target, degree: table.degree, fit: fit}, nil
}

// Target is the species the fit belongs to.
func (c *Tabata) Target() string { return c.target }

// Degree is the capture degree of the table the fit came from.
func (c *Tabata) Degree() Degree { return c.degree }

// Fit returns the coefficients in use.
func (c *Tabata) Fit() TabataFit { return c.fit }

// Evaluate returns σ(energy) [m²]; energy is the impact energy [eV].
func (c *Tabata) Evaluate(energy float64) float64 {
	e1 := energy/1000.0 - c.fit.Et
	a := c.fit.A
	sigma := tabataSigma0 * (c.f(e1) + a[6]*c.f(e1/a[7]))

	return nanToZero(sigma)
}

// Calculate is Evaluate over a slice of energies.
func (c *Tabata) Calculate(energies []float64) []float64 {
	return EvaluateAll(c, energies)
}

func (c *Tabata) f(e1 float64) float64 {
	a := c.fit.A
	den := 1.0 + math.Pow(e1/a[4], a[1]+a[5])
	if !math.IsInf(a[2], 1) {
		den += math.Pow(e1/a[2], a[1]+a[3])
	}

	return a[0] * math.Pow(e1/tabataER, a[1]) / den
}
