package profiledb

import (
	"context"
	"log/slog"
	"sync"

	"github.com/katalvlaran/sibeira/spline"
)

// MemoryStore keeps one Database per species in memory.
type MemoryStore struct {
	mu     sync.RWMutex
	logger *slog.Logger
	byName map[string]Database
	closed bool
}

// NewMemoryStore returns an empty store.
func NewMemoryStore(opts ...Option) *MemoryStore {
	o := gatherOptions(opts)

	return &MemoryStore{logger: o.logger, byName: make(map[string]Database)}
}

// Import implements Store.
func (s *MemoryStore) Import(_ context.Context, key Key) (*spline.LogLog, error) {
	if err := key.validate(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrClosed
	}
	db, ok := s.byName[key.Species]
	if !ok {
		return nil, key.noSpecies()
	}
	r, err := db.Get(key)
	if err != nil {
		return nil, err
	}
	out := cloneProfile(r.Profile)

	return &out, nil
}

// Export implements Store.
func (s *MemoryStore) Export(_ context.Context, key Key, profile *spline.LogLog) error {
	if err := key.validate(); err != nil {
		return err
	}
	if err := checkProfile(profile); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	db, ok := s.byName[key.Species]
	if !ok {
		db = make(Database)
		s.byName[key.Species] = db
	}
	clone := cloneProfile(*profile)
	db.Put(key, NewRecord(&clone))
	s.logger.Debug("profile stored", slog.String("key", key.String()), slog.String("backend", BackendMemory))

	return nil
}

// Close implements Store.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.byName = nil

	return nil
}

// cloneProfile deep-copies p so stored and returned profiles never alias.
func cloneProfile(p spline.LogLog) spline.LogLog {
	return spline.LogLog{
		Energies: append([]float64(nil), p.Energies...),
		Rates:    append([]float64(nil), p.Rates...),
		Fit: spline.Cubic{
			Knots:    append([]float64(nil), p.Fit.Knots...),
			Segments: append([]spline.Segment(nil), p.Fit.Segments...),
		},
	}
}
