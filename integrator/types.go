package integrator

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/sibeira/crosssection"
	"github.com/katalvlaran/sibeira/physconst"
	"github.com/katalvlaran/sibeira/species"
)

// Target selects the plasma particle the beam atom collides with.
type Target int

const (
	// Electron: electron-impact ionisation by thermal electrons.
	Electron Target = iota + 1
	// Ion: charge exchange with thermal plasma deuterons.
	Ion
)

// Reaction names accepted by ParseReaction.
const (
	ReactionElectronImpactIonisation = "electron impact ionisation"
	ReactionChargeExchange           = "charge exchange"
)

// ParseReaction maps a reaction name onto its target.
func ParseReaction(name string) (Target, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case ReactionElectronImpactIonisation:
		return Electron, nil
	case ReactionChargeExchange:
		return Ion, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidReaction, name)
	}
}

// String returns the reaction name of the target.
func (t Target) String() string {
	switch t {
	case Electron:
		return ReactionElectronImpactIonisation
	case Ion:
		return ReactionChargeExchange
	default:
		return fmt.Sprintf("target(%d)", int(t))
	}
}

// TargetMass returns the mass [kg] of the colliding plasma particle.
func TargetMass(t Target) (float64, error) {
	switch t {
	case Electron:
		return physconst.ElectronMass, nil
	case Ion:
		return species.DeuteriumMass(), nil
	default:
		return 0, fmt.Errorf("%w: %v", ErrInvalidReaction, t)
	}
}

// Spec describes one rate-coefficient integral.
type Spec struct {
	Dimension           int
	Target              Target
	CrossSection        crosssection.Model
	Secondary           crosssection.Model // optional double ionisation / double capture
	ElectronTemperature float64            // [eV]
	BeamSpeed           float64            // [m/s], ion target only
}

// validate checks the spec against the target/dimension rules.
func (s Spec) validate() error {
	switch s.Target {
	case Electron:
		if s.Dimension != 1 {
			return fmt.Errorf("%w: %d for %v (want 1)", ErrInvalidDimension, s.Dimension, s.Target)
		}
	case Ion:
		if s.Dimension != 2 && s.Dimension != 3 {
			return fmt.Errorf("%w: %d for %v (want 2 or 3)", ErrInvalidDimension, s.Dimension, s.Target)
		}
	default:
		return fmt.Errorf("%w: target %v", ErrInvalidReaction, s.Target)
	}
	if s.CrossSection == nil {
		return fmt.Errorf("%w: nil cross section", ErrInvalidInput)
	}
	if !(s.ElectronTemperature > 0) {
		return fmt.Errorf("%w: temperature %v eV", ErrInvalidInput, s.ElectronTemperature)
	}
	if !(s.BeamSpeed >= 0) {
		return fmt.Errorf("%w: beam speed %v m/s", ErrInvalidInput, s.BeamSpeed)
	}

	return nil
}
