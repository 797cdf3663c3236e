package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/katalvlaran/sibeira/crosssection"
	"github.com/katalvlaran/sibeira/integrator"
	"github.com/katalvlaran/sibeira/profile"
	"github.com/katalvlaran/sibeira/profiledb"
	"github.com/katalvlaran/sibeira/quadrature"
	"gopkg.in/yaml.v3"
)

// Config is the full run configuration.
type Config struct {
	ReferenceEnergies []float64        `yaml:"reference_energies"`
	DoubleTermWeight  float64          `yaml:"double_term_weight"`
	Quadrature        QuadratureConfig `yaml:"quadrature"`
	Database          DatabaseConfig   `yaml:"database"`
	Tabata            TabataConfig     `yaml:"tabata"`
	Logging           LoggingConfig    `yaml:"logging"`
}

// QuadratureConfig tunes the adaptive rule and the normalisation memo.
type QuadratureConfig struct {
	RelTol             float64 `yaml:"rel_tol"`
	AbsTol             float64 `yaml:"abs_tol"`
	Order              int     `yaml:"order"`
	MaxSubdivisions    int     `yaml:"max_subdivisions"`
	NormalisationCache int     `yaml:"normalisation_cache"`
}

// DatabaseConfig selects the profile database.
type DatabaseConfig struct {
	Backend   string `yaml:"backend"`
	Directory string `yaml:"directory"`
}

// TabataConfig names the charge-exchange fit tables. Both or neither.
type TabataConfig struct {
	Single string `yaml:"single"`
	Double string `yaml:"double"`
}

// LoggingConfig configures NewLogger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in configuration: the standard ladder, weight 2,
// the quadrature defaults and an in-memory database.
func Default() *Config {
	return &Config{
		ReferenceEnergies: profile.DefaultReferenceEnergies(),
		DoubleTermWeight:  integrator.DefaultSecondaryWeight,
		Quadrature: QuadratureConfig{
			RelTol:             quadrature.DefaultRelTol,
			AbsTol:             quadrature.DefaultAbsTol,
			Order:              quadrature.DefaultOrder,
			MaxSubdivisions:    quadrature.DefaultMaxSubdivisions,
			NormalisationCache: integrator.DefaultCacheSize,
		},
		Database: DatabaseConfig{Backend: profiledb.BackendMemory},
		Logging:  LoggingConfig{Level: "info", Format: "text"},
	}
}

// Load reads path over the defaults, applies SIBEIRA_* overrides and
// validates. A missing file is an error: the path is always explicit.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg, err := decode(data)
	if err != nil {
		return nil, err
	}
	ApplyEnvironment(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse decodes YAML over the defaults and validates, without environment
// overrides.
func Parse(data []byte) (*Config, error) {
	cfg, err := decode(data)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func decode(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}

	return cfg, nil
}

// ApplyEnvironment overrides database and logging settings from
// SIBEIRA_DATABASE_BACKEND, SIBEIRA_DATABASE_DIRECTORY, SIBEIRA_LOG_LEVEL
// and SIBEIRA_LOG_FORMAT when set.
func ApplyEnvironment(cfg *Config) {
	if v := os.Getenv("SIBEIRA_DATABASE_BACKEND"); v != "" {
		cfg.Database.Backend = v
	}
	if v := os.Getenv("SIBEIRA_DATABASE_DIRECTORY"); v != "" {
		cfg.Database.Directory = v
	}
	if v := os.Getenv("SIBEIRA_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("SIBEIRA_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}

// Validate reports every problem at once, joined.
func (c *Config) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if err := profile.ValidateReferenceEnergies(c.ReferenceEnergies); err != nil {
		add("reference_energies: %v", err)
	}
	if math.IsNaN(c.DoubleTermWeight) || math.IsInf(c.DoubleTermWeight, 0) || c.DoubleTermWeight < 0 {
		add("double_term_weight %v must be finite and ≥ 0", c.DoubleTermWeight)
	}

	q := c.Quadrature
	if !(q.RelTol > 0) || math.IsInf(q.RelTol, 0) {
		add("quadrature.rel_tol %v must be finite and > 0", q.RelTol)
	}
	if !(q.AbsTol >= 0) || math.IsInf(q.AbsTol, 0) {
		add("quadrature.abs_tol %v must be finite and ≥ 0", q.AbsTol)
	}
	if q.Order < 2 {
		add("quadrature.order %d must be ≥ 2", q.Order)
	}
	if q.MaxSubdivisions < 1 {
		add("quadrature.max_subdivisions %d must be ≥ 1", q.MaxSubdivisions)
	}
	if q.NormalisationCache < 1 {
		add("quadrature.normalisation_cache %d must be ≥ 1", q.NormalisationCache)
	}

	switch strings.ToLower(c.Database.Backend) {
	case profiledb.BackendMemory:
	case profiledb.BackendYAML, profiledb.BackendSQLite:
		if c.Database.Directory == "" {
			add("database.directory is required for the %s backend", c.Database.Backend)
		}
	default:
		add("database.backend %q is not one of yaml, sqlite, memory", c.Database.Backend)
	}

	if (c.Tabata.Single == "") != (c.Tabata.Double == "") {
		add("tabata.single and tabata.double must be set together")
	}

	if _, err := parseLevel(c.Logging.Level); err != nil {
		add("logging.level: %v", err)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "", "text", "json":
	default:
		add("logging.format %q is not one of text, json", c.Logging.Format)
	}

	return errors.Join(errs...)
}

// QuadratureOptions converts the quadrature section.
func (c *Config) QuadratureOptions() []quadrature.Option {
	q := c.Quadrature
	return []quadrature.Option{
		quadrature.WithRelTol(q.RelTol),
		quadrature.WithAbsTol(q.AbsTol),
		quadrature.WithOrder(q.Order),
		quadrature.WithMaxSubdivisions(q.MaxSubdivisions),
	}
}

// IntegratorOptions converts the quadrature section and the double-term
// weight. Each call allocates a fresh normalisation cache.
func (c *Config) IntegratorOptions() []integrator.Option {
	return []integrator.Option{
		integrator.WithQuadrature(c.QuadratureOptions()...),
		integrator.WithNormalisationCache(integrator.NewNormalisationCache(c.Quadrature.NormalisationCache)),
		integrator.WithSecondaryWeight(c.DoubleTermWeight),
	}
}

// NewIntegrator builds an integrator from IntegratorOptions.
func (c *Config) NewIntegrator() *integrator.Integrator {
	return integrator.New(c.IntegratorOptions()...)
}

// OpenStore opens the configured profile database.
func (c *Config) OpenStore(logger *slog.Logger) (profiledb.Store, error) {
	var opts []profiledb.Option
	if logger != nil {
		opts = append(opts, profiledb.WithLogger(logger))
	}

	return profiledb.NewStore(c.Database.Backend, c.Database.Directory, opts...)
}

// TabataTables loads the configured fit tables. Both are nil when none
// are configured.
func (c *Config) TabataTables() (single, double *crosssection.TabataTable, err error) {
	if c.Tabata.Single == "" && c.Tabata.Double == "" {
		return nil, nil, nil
	}
	if single, err = crosssection.OpenTabataTable(c.Tabata.Single, crosssection.Single); err != nil {
		return nil, nil, fmt.Errorf("config: %w", err)
	}
	if double, err = crosssection.OpenTabataTable(c.Tabata.Double, crosssection.Double); err != nil {
		return nil, nil, fmt.Errorf("config: %w", err)
	}

	return single, double, nil
}

// BuilderOptions converts the ladder, integrator and Tabata settings,
// attaching store and logger when non-nil.
func (c *Config) BuilderOptions(store profiledb.Store, logger *slog.Logger) ([]profile.Option, error) {
	opts := []profile.Option{
		profile.WithIntegrator(c.NewIntegrator()),
		profile.WithReferenceEnergies(c.ReferenceEnergies),
	}
	single, double, err := c.TabataTables()
	if err != nil {
		return nil, err
	}
	if single != nil {
		opts = append(opts, profile.WithTabataTables(single, double))
	}
	if store != nil {
		opts = append(opts, profile.WithStore(store))
	}
	if logger != nil {
		opts = append(opts, profile.WithLogger(logger))
	}

	return opts, nil
}

// NewLogger returns a slog logger writing to w at the configured level and
// format. Call after Validate.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level, err := parseLevel(c.Logging.Level)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(c.Logging.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, err
	}

	return level, nil
}
