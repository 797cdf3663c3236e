package profile

import (
	"log/slog"

	"github.com/katalvlaran/sibeira/crosssection"
	"github.com/katalvlaran/sibeira/integrator"
	"github.com/katalvlaran/sibeira/profiledb"
)

// Option configures a Rate or a Builder.
type Option func(*options)

type options struct {
	integrator   *integrator.Integrator
	store        profiledb.Store
	logger       *slog.Logger
	energies     []float64
	tabataSingle *crosssection.TabataTable
	tabataDouble *crosssection.TabataTable
}

// WithIntegrator sets the rate integrator (default integrator.New()).
func WithIntegrator(in *integrator.Integrator) Option {
	if in == nil {
		panic("profile: WithIntegrator: nil integrator")
	}

	return func(o *options) { o.integrator = in }
}

// WithStore attaches the profile database used by Import, Export and
// ProfileFor.
func WithStore(s profiledb.Store) Option {
	if s == nil {
		panic("profile: WithStore: nil store")
	}

	return func(o *options) { o.store = s }
}

// WithLogger routes build progress to l (default slog.Default()).
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("profile: WithLogger: nil logger")
	}

	return func(o *options) { o.logger = l }
}

// WithReferenceEnergies replaces the default temperature ladder. Invalid
// ladders panic; use Builder.SetReferenceEnergies for runtime input.
func WithReferenceEnergies(energies []float64) Option {
	if err := ValidateReferenceEnergies(energies); err != nil {
		panic(err.Error())
	}
	e := append([]float64(nil), energies...)

	return func(o *options) { o.energies = e }
}

// WithTabataTables sets the single and double capture fit tables. Without
// them every charge-exchange rate fails with crosssection.ErrNoTabataTable.
func WithTabataTables(single, double *crosssection.TabataTable) Option {
	if single == nil || double == nil {
		panic("profile: WithTabataTables: nil table")
	}
	if single.Degree() != crosssection.Single || double.Degree() != crosssection.Double {
		panic("profile: WithTabataTables: tables given in the wrong degree")
	}

	return func(o *options) {
		o.tabataSingle = single
		o.tabataDouble = double
	}
}

func gatherOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.integrator == nil {
		o.integrator = integrator.New()
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.energies == nil {
		o.energies = DefaultReferenceEnergies()
	}

	return o
}
