package profile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/katalvlaran/sibeira/beam"
	"github.com/katalvlaran/sibeira/integrator"
	"github.com/katalvlaran/sibeira/profiledb"
	"github.com/katalvlaran/sibeira/spline"
	"gonum.org/v1/gonum/floats"
)

// Kind names a rate profile.
type Kind string

// Profile kinds.
const (
	KindBEB    Kind = "beb"
	KindNRL    Kind = "nrl"
	KindTabata Kind = "tabata"
)

// minLadder is the fewest reference energies a not-a-knot cubic accepts.
const minLadder = 4

// ParseKind accepts "beb", "nrl" or "tabata", case-insensitively.
func ParseKind(name string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(name))); k {
	case KindBEB, KindNRL, KindTabata:
		return k, nil
	default:
		return "", fmt.Errorf("%w: profile %q", integrator.ErrInvalidReaction, name)
	}
}

// DefaultReferenceEnergies returns a fresh copy of the default ladder [eV].
func DefaultReferenceEnergies() []float64 {
	return []float64{10, 20, 50, 100, 200, 500, 1000}
}

type slot struct {
	kind      Kind
	dimension int
}

// Builder builds, caches and persists the rate profiles of one beam.
type Builder struct {
	rate     *Rate
	energies []float64
	store    profiledb.Store
	logger   *slog.Logger
	splines  map[slot]*spline.LogLog
}

// NewBuilder returns a Builder for a beam of symbol at energy [eV].
func NewBuilder(symbol string, energy float64, ionisationLevel int, opts ...Option) (*Builder, error) {
	b, err := beam.New(symbol, energy, ionisationLevel)
	if err != nil {
		return nil, err
	}

	return NewBuilderFor(b, opts...), nil
}

// NewBuilderFor returns a Builder around an existing beam.
func NewBuilderFor(b *beam.Beam, opts ...Option) *Builder {
	o := gatherOptions(opts)

	return &Builder{
		rate:     newRate(b, o),
		energies: o.energies,
		store:    o.store,
		logger:   o.logger,
		splines:  make(map[slot]*spline.LogLog),
	}
}

// Rate exposes the underlying rate evaluator.
func (b *Builder) Rate() *Rate { return b.rate }

// Beam is the beam the profiles belong to.
func (b *Builder) Beam() *beam.Beam { return b.rate.beam }

// ReferenceEnergies returns a copy of the temperature ladder [eV].
func (b *Builder) ReferenceEnergies() []float64 {
	return append([]float64(nil), b.energies...)
}

// SetReferenceEnergies replaces the ladder and drops every cached spline.
func (b *Builder) SetReferenceEnergies(energies []float64) error {
	if err := ValidateReferenceEnergies(energies); err != nil {
		return err
	}
	b.energies = append([]float64(nil), energies...)
	b.splines = make(map[slot]*spline.LogLog)

	return nil
}

// Build evaluates kind over the ladder at unit density and fits the log-log
// spline, replacing any cached spline of (kind, tabataDimension). The beam's
// plasma state is restored afterwards.
func (b *Builder) Build(kind Kind, tabataDimension int) (*spline.LogLog, error) {
	if _, err := ParseKind(string(kind)); err != nil {
		return nil, err
	}
	bm := b.rate.beam
	prevT, prevN := bm.ElectronTemperature, bm.ElectronDensity
	defer func() { bm.ElectronTemperature, bm.ElectronDensity = prevT, prevN }()

	start := time.Now()
	rates := make([]float64, len(b.energies))
	for i, t := range b.energies {
		bm.ElectronTemperature, bm.ElectronDensity = t, 1
		k, err := b.rate.Attenuation(kind, tabataDimension)
		if err != nil {
			return nil, fmt.Errorf("profile: build %s (Tabata %s): %w",
				kind, profiledb.TabataLabel(tabataDimension), err)
		}
		rates[i] = k
		b.logger.Debug("reference rate",
			slog.String("species", bm.Species),
			slog.String("kind", string(kind)),
			slog.Int("step", i+1),
			slog.Int("of", len(b.energies)),
			slog.Float64("temperature_eV", t),
			slog.Float64("rate_m3_s", k))
	}

	s, err := spline.NewLogLog(b.energies, rates)
	if err != nil {
		return nil, fmt.Errorf("profile: fit %s: %w", kind, err)
	}
	b.splines[slot{kind, tabataDimension}] = s
	b.logger.Info("rate profile built",
		slog.String("species", bm.Species),
		slog.Float64("beam_keV", bm.EnergyKeV()),
		slog.String("kind", string(kind)),
		slog.String("tabata", profiledb.TabataLabel(tabataDimension)),
		slog.Duration("elapsed", time.Since(start)))

	return s, nil
}

// Spline returns the cached spline of (kind, tabataDimension), if any.
func (b *Builder) Spline(kind Kind, tabataDimension int) (*spline.LogLog, bool) {
	s, ok := b.splines[slot{kind, tabataDimension}]
	return s, ok
}

// Evaluate returns the cached profile at temperature [eV]; 0 at 0.
func (b *Builder) Evaluate(kind Kind, tabataDimension int, temperature float64) (float64, error) {
	s, ok := b.Spline(kind, tabataDimension)
	if !ok {
		return 0, b.notBuilt(kind, tabataDimension)
	}

	return s.Evaluate(temperature), nil
}

// EvaluateAll is Evaluate over a slice of temperatures.
func (b *Builder) EvaluateAll(kind Kind, tabataDimension int, temperatures []float64) ([]float64, error) {
	s, ok := b.Spline(kind, tabataDimension)
	if !ok {
		return nil, b.notBuilt(kind, tabataDimension)
	}

	return s.EvaluateAll(temperatures), nil
}

// Key is the database key of (kind, tabataDimension) for this beam.
func (b *Builder) Key(kind Kind, tabataDimension int) profiledb.Key {
	bm := b.rate.beam
	return profiledb.Key{
		Species:    bm.Species,
		BeamEnergy: bm.Energy,
		Kind:       string(kind),
		Dimension:  tabataDimension,
	}
}

// Import loads (kind, tabataDimension) from the store into the cache.
func (b *Builder) Import(ctx context.Context, kind Kind, tabataDimension int) (*spline.LogLog, error) {
	if b.store == nil {
		return nil, ErrNoStore
	}
	s, err := b.store.Import(ctx, b.Key(kind, tabataDimension))
	if err != nil {
		return nil, err
	}
	b.splines[slot{kind, tabataDimension}] = s

	return s, nil
}

// Export writes s under (kind, tabataDimension).
func (b *Builder) Export(ctx context.Context, kind Kind, tabataDimension int, s *spline.LogLog) error {
	if b.store == nil {
		return ErrNoStore
	}

	return b.store.Export(ctx, b.Key(kind, tabataDimension), s)
}

// ProfileFor imports (kind, tabataDimension), and on a cache miss builds and
// exports it. Errors other than the two not-found kinds are returned as is.
func (b *Builder) ProfileFor(ctx context.Context, kind Kind, tabataDimension int) (*spline.LogLog, error) {
	s, err := b.Import(ctx, kind, tabataDimension)
	switch {
	case err == nil:
		return s, nil
	case !errors.Is(err, profiledb.ErrNoProfileForSpecies) && !errors.Is(err, profiledb.ErrProfileNotFound):
		return nil, err
	}
	b.logger.Debug("profile cache miss", slog.String("key", b.Key(kind, tabataDimension).String()))

	s, err = b.Build(kind, tabataDimension)
	if err != nil {
		return nil, err
	}
	if err := b.Export(ctx, kind, tabataDimension, s); err != nil {
		return nil, err
	}

	return s, nil
}

func (b *Builder) notBuilt(kind Kind, tabataDimension int) error {
	return fmt.Errorf("%w: %s (Tabata %s)", ErrNotBuilt, kind, profiledb.TabataLabel(tabataDimension))
}

// ValidateReferenceEnergies checks a temperature ladder: at least four
// finite, positive, strictly increasing values.
func ValidateReferenceEnergies(energies []float64) error {
	switch {
	case len(energies) < minLadder:
		return fmt.Errorf("%w: %d points, need at least %d", ErrInvalidLadder, len(energies), minLadder)
	case floats.HasNaN(energies):
		return fmt.Errorf("%w: NaN", ErrInvalidLadder)
	case floats.Min(energies) <= 0:
		return fmt.Errorf("%w: non-positive energy", ErrInvalidLadder)
	case math.IsInf(floats.Max(energies), 1):
		return fmt.Errorf("%w: infinite energy", ErrInvalidLadder)
	}
	for i := 1; i < len(energies); i++ {
		if energies[i] <= energies[i-1] {
			return fmt.Errorf("%w: not strictly increasing at %v", ErrInvalidLadder, energies[i])
		}
	}

	return nil
}
