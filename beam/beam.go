package beam

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/sibeira/physconst"
	"github.com/katalvlaran/sibeira/species"
)

// Beam is a mono-energetic neutral beam of one species.
//
// Mass and Speed are derived once by New. ElectronTemperature [eV] and
// ElectronDensity [m⁻³] start as NaN and are set through SetProfiles.
type Beam struct {
	Species         string
	Energy          float64 // kinetic energy [eV]
	IonisationLevel int     // 0 for neutral atoms, 1 for singly ionised

	Mass  float64 // [kg]
	Speed float64 // [m/s]

	ElectronTemperature float64 // [eV]
	ElectronDensity     float64 // [m⁻³]
}

// New validates the energy, resolves the mass of symbol and derives the speed.
func New(symbol string, energy float64, ionisationLevel int) (*Beam, error) {
	mass, err := species.Mass(symbol)
	if err != nil {
		return nil, fmt.Errorf("beam: %w", err)
	}
	speed, err := speedOf(energy, mass)
	if err != nil {
		return nil, err
	}

	return &Beam{
		Species:             symbol,
		Energy:              energy,
		IonisationLevel:     ionisationLevel,
		Mass:                mass,
		Speed:               speed,
		ElectronTemperature: math.NaN(),
		ElectronDensity:     math.NaN(),
	}, nil
}

// Speed returns the speed [m/s] of a symbol atom with kinetic energy [eV].
func Speed(symbol string, energy float64) (float64, error) {
	b, err := New(symbol, energy, 0)
	if err != nil {
		return 0, err
	}

	return b.Speed, nil
}

// ParseEnergy converts a textual energy [eV] into a float, rejecting
// anything that is not a finite non-negative number.
func ParseEnergy(text string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: energy is not numeric: %q", ErrInvalidInput, text)
	}
	if err := validateEnergy(v); err != nil {
		return 0, err
	}

	return v, nil
}

// SpeedFromText is Speed for energies given as text.
func SpeedFromText(symbol, energy string) (float64, error) {
	v, err := ParseEnergy(energy)
	if err != nil {
		return 0, err
	}

	return Speed(symbol, v)
}

// SetProfiles attaches the local plasma state. A NaN argument leaves the
// corresponding field unchanged.
func (b *Beam) SetProfiles(electronTemperature, electronDensity float64) {
	if !math.IsNaN(electronTemperature) {
		b.ElectronTemperature = electronTemperature
	}
	if !math.IsNaN(electronDensity) {
		b.ElectronDensity = electronDensity
	}
}

// EnergyKeV returns the beam energy in keV.
func (b *Beam) EnergyKeV() float64 { return b.Energy / 1000.0 }

func speedOf(energy, mass float64) (float64, error) {
	if err := validateEnergy(energy); err != nil {
		return 0, err
	}

	return math.Sqrt(2.0 * energy * physconst.ElementaryCharge / mass), nil
}

func validateEnergy(energy float64) error {
	if math.IsNaN(energy) || math.IsInf(energy, 0) {
		return fmt.Errorf("%w: energy is not a finite number (%v)", ErrInvalidInput, energy)
	}
	if energy < 0 {
		return fmt.Errorf("%w: energy cannot be negative (%v)", ErrInvalidInput, energy)
	}

	return nil
}
