package profiledb

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/sibeira/spline"
)

// Store persists rate profiles.
type Store interface {
	// Import returns the profile stored under key.
	Import(ctx context.Context, key Key) (*spline.LogLog, error)
	// Export writes profile under key, preserving every other entry.
	Export(ctx context.Context, key Key, profile *spline.LogLog) error
	// Close releases the backend.
	Close() error
}

// Backend names accepted by NewStore.
const (
	BackendYAML   = "yaml"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Option configures a Store.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger routes store diagnostics to l.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("profiledb: WithLogger: nil logger")
	}

	return func(o *options) { o.logger = l }
}

func gatherOptions(opts []Option) options {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// NewStore opens the named backend rooted at dir. The memory backend
// ignores dir; an empty kind selects yaml.
func NewStore(kind, dir string, opts ...Option) (Store, error) {
	switch strings.ToLower(kind) {
	case "", BackendYAML:
		return NewYAMLStore(dir, opts...)
	case BackendSQLite:
		return NewSQLiteStore(dir, opts...)
	case BackendMemory:
		return NewMemoryStore(opts...), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedBackend, kind)
	}
}

func checkProfile(profile *spline.LogLog) error {
	if profile == nil {
		return fmt.Errorf("%w: nil profile", ErrInvalidKey)
	}

	return nil
}
