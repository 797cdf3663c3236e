package profile

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sibeira/beam"
	"github.com/katalvlaran/sibeira/crosssection"
	"github.com/katalvlaran/sibeira/integrator"
)

// TabataOff is the Tabata dimension that leaves charge exchange out.
const TabataOff = -1

// Rate evaluates the attenuation rates of one beam at the plasma state
// attached to it. Cross-section models are resolved on first use.
type Rate struct {
	beam       *beam.Beam
	integrator *integrator.Integrator

	tabataSingle *crosssection.TabataTable
	tabataDouble *crosssection.TabataTable

	beb       *crosssection.BEB
	nrl       *crosssection.NRL
	capture   crosssection.Model
	captureX2 crosssection.Model
}

// NewRate wraps b. Only WithIntegrator and WithTabataTables apply.
func NewRate(b *beam.Beam, opts ...Option) *Rate {
	o := gatherOptions(opts)

	return newRate(b, o)
}

func newRate(b *beam.Beam, o options) *Rate {
	return &Rate{
		beam:         b,
		integrator:   o.integrator,
		tabataSingle: o.tabataSingle,
		tabataDouble: o.tabataDouble,
	}
}

// Beam is the wrapped beam.
func (r *Rate) Beam() *beam.Beam { return r.beam }

// SetProfiles forwards to the beam; NaN leaves a field unchanged.
func (r *Rate) SetProfiles(electronTemperature, electronDensity float64) {
	r.beam.SetProfiles(electronTemperature, electronDensity)
}

// FullRateWithBEB is the BEB electron-impact rate plus, unless dimension is
// negative, the charge-exchange rate integrated in that dimension.
func (r *Rate) FullRateWithBEB(tabataDimension int) (float64, error) {
	t, err := r.temperature()
	if err != nil {
		return 0, err
	}
	if r.beb == nil {
		if r.beb, err = crosssection.NewBEB(r.beam.Species, r.beam.IonisationLevel); err != nil {
			return 0, err
		}
	}
	k, err := r.integrator.Coefficient(integrator.Spec{
		Dimension:           1,
		Target:              integrator.Electron,
		CrossSection:        crosssection.Thresholded(r.beb, r.beb.Threshold()),
		ElectronTemperature: t,
	})
	if err != nil {
		return 0, fmt.Errorf("profile: BEB rate at %v eV: %w", t, err)
	}

	return r.withTabata(k, tabataDimension)
}

// FullRateWithNRL is the NRL rate plus, unless dimension is negative, the
// charge-exchange rate integrated in that dimension.
func (r *Rate) FullRateWithNRL(tabataDimension int) (float64, error) {
	t, err := r.temperature()
	if err != nil {
		return 0, err
	}
	if r.nrl == nil {
		if r.nrl, err = crosssection.NewNRL(r.beam.Species, r.beam.IonisationLevel); err != nil {
			return 0, err
		}
	}

	return r.withTabata(r.nrl.Evaluate(t), tabataDimension)
}

// FullRateWithTabata is the charge-exchange rate alone; dimension must be 2 or 3.
// It fails with crosssection.ErrNoTabataTable unless WithTabataTables was given.
func (r *Rate) FullRateWithTabata(tabataDimension int) (float64, error) {
	t, err := r.temperature()
	if err != nil {
		return 0, err
	}
	if err := r.resolveTabata(); err != nil {
		return 0, err
	}
	k, err := r.integrator.Coefficient(integrator.Spec{
		Dimension:           tabataDimension,
		Target:              integrator.Ion,
		CrossSection:        r.capture,
		Secondary:           r.captureX2,
		ElectronTemperature: t,
		BeamSpeed:           r.beam.Speed,
	})
	if err != nil {
		return 0, fmt.Errorf("profile: Tabata rate at %v eV: %w", t, err)
	}

	return k, nil
}

// Rate dispatches on kind.
func (r *Rate) Rate(kind Kind, tabataDimension int) (float64, error) {
	switch kind {
	case KindBEB:
		return r.FullRateWithBEB(tabataDimension)
	case KindNRL:
		return r.FullRateWithNRL(tabataDimension)
	case KindTabata:
		return r.FullRateWithTabata(tabataDimension)
	default:
		return 0, fmt.Errorf("%w: profile %q", integrator.ErrInvalidReaction, string(kind))
	}
}

// Attenuation is Rate scaled by the beam's electron density [1/s]. A zero
// density short-circuits to 0 without integrating.
func (r *Rate) Attenuation(kind Kind, tabataDimension int) (float64, error) {
	n := r.beam.ElectronDensity
	if math.IsNaN(n) || n < 0 {
		return 0, fmt.Errorf("%w: electron density %v", ErrInvalidInput, n)
	}
	if n == 0 {
		if _, err := ParseKind(string(kind)); err != nil {
			return 0, err
		}
		return 0, nil
	}
	k, err := r.Rate(kind, tabataDimension)
	if err != nil {
		return 0, err
	}

	return k * n, nil
}

func (r *Rate) withTabata(k float64, tabataDimension int) (float64, error) {
	if tabataDimension < 0 {
		return k, nil
	}
	cx, err := r.FullRateWithTabata(tabataDimension)
	if err != nil {
		return 0, err
	}

	return k + cx, nil
}

func (r *Rate) temperature() (float64, error) {
	t := r.beam.ElectronTemperature
	if !(t > 0) || math.IsInf(t, 0) {
		return 0, fmt.Errorf("%w: electron temperature %v eV", ErrInvalidInput, t)
	}

	return t, nil
}

// resolveTabata builds the single and double capture models of the beam
// species from the tables given to WithTabataTables.
func (r *Rate) resolveTabata() error {
	if r.capture != nil {
		return nil
	}
	single, err := r.tabataModel(r.tabataSingle, crosssection.Single)
	if err != nil {
		return err
	}
	double, err := r.tabataModel(r.tabataDouble, crosssection.Double)
	if err != nil {
		return err
	}
	r.capture, r.captureX2 = single, double

	return nil
}

func (r *Rate) tabataModel(table *crosssection.TabataTable, degree crosssection.Degree) (crosssection.Model, error) {
	if table == nil {
		return nil, fmt.Errorf("profile: %s capture: %w: %s", degree, crosssection.ErrNoTabataTable, r.beam.Species)
	}

	return crosssection.NewTabata(table, r.beam.Species)
}
