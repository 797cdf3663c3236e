package profiledb

import (
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"
)

// Key addresses one stored profile.
type Key struct {
	Species    string  // beam species symbol, also the database file stem
	BeamEnergy float64 // [eV]
	Kind       string  // profile kind, e.g. "beb"
	Dimension  int     // Tabata integration dimension; < 0 means off
}

// EnergyKey is the first-level key of k.
func (k Key) EnergyKey() string { return BeamEnergyKey(k.BeamEnergy) }

// DimensionKey is the third-level key of k.
func (k Key) DimensionKey() string { return DimensionKey(k.Dimension) }

// String renders k for logs.
func (k Key) String() string {
	return fmt.Sprintf("%s/%s/%s/%s", k.Species, k.EnergyKey(), k.Kind, k.DimensionKey())
}

func (k Key) validate() error {
	switch {
	case k.Species == "" || k.Species == "." || k.Species == "..":
		return fmt.Errorf("%w: species %q", ErrInvalidKey, k.Species)
	case strings.ContainsAny(k.Species, `/\`) || filepath.Base(k.Species) != k.Species:
		return fmt.Errorf("%w: species %q is not a file name", ErrInvalidKey, k.Species)
	case k.Kind == "":
		return fmt.Errorf("%w: empty kind", ErrInvalidKey)
	case math.IsNaN(k.BeamEnergy) || math.IsInf(k.BeamEnergy, 0):
		return fmt.Errorf("%w: beam energy %v", ErrInvalidKey, k.BeamEnergy)
	}

	return nil
}

// notFound builds the ErrProfileNotFound error for k.
func (k Key) notFound() error {
	return fmt.Errorf("%w: %s (Tabata %s)", ErrProfileNotFound, k.Kind, TabataLabel(k.Dimension))
}

// noSpecies builds the ErrNoProfileForSpecies error for k.
func (k Key) noSpecies() error {
	return fmt.Errorf("%w: there is no profile for %s", ErrNoProfileForSpecies, k.Species)
}

// BeamEnergyKey formats an energy in eV as keV the way a shortest
// round-trip float repr does: a trailing ".0" for whole numbers, and
// exponent form below 1e-4 or from 1e16 on.
func BeamEnergyKey(eV float64) string {
	v := eV / 1000
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	abs := math.Abs(v)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}

// DimensionKey formats a Tabata dimension.
func DimensionKey(dimension int) string { return strconv.Itoa(dimension) }

// TabataLabel is "OFF" for a negative dimension and "<n>D" otherwise.
func TabataLabel(dimension int) string {
	if dimension < 0 {
		return "OFF"
	}

	return strconv.Itoa(dimension) + "D"
}

// FileName is the database path of a species for the given extension.
func FileName(dir, species, ext string) string {
	return filepath.Join(dir, species+"."+strings.TrimPrefix(ext, "."))
}
