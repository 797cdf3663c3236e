package profiledb

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/katalvlaran/sibeira/spline"
	"gopkg.in/yaml.v3"
)

// YAMLExt is the file extension of the yaml backend.
const YAMLExt = "yaml"

// YAMLStore keeps each species database in <dir>/<species>.yaml.
type YAMLStore struct {
	dir    string
	logger *slog.Logger

	mu     sync.Mutex
	closed bool
}

// NewYAMLStore returns a store rooted at dir. The directory is created on
// the first Export.
func NewYAMLStore(dir string, opts ...Option) (*YAMLStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: empty directory", ErrInvalidKey)
	}
	o := gatherOptions(opts)

	return &YAMLStore{dir: dir, logger: o.logger}, nil
}

// Dir is the database directory.
func (s *YAMLStore) Dir() string { return s.dir }

// Import implements Store.
func (s *YAMLStore) Import(_ context.Context, key Key) (*spline.LogLog, error) {
	if err := key.validate(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrClosed
	}
	db, err := s.read(key.Species)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, key.noSpecies()
	}
	if err != nil {
		return nil, err
	}
	r, err := db.Get(key)
	if err != nil {
		return nil, err
	}
	if err := r.check(); err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}

	return &r.Profile, nil
}

// Export implements Store.
func (s *YAMLStore) Export(_ context.Context, key Key, profile *spline.LogLog) error {
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
	db, err := s.read(key.Species)
	if errors.Is(err, fs.ErrNotExist) {
		db = make(Database)
	} else if err != nil {
		return err
	}
	db.Put(key, NewRecord(profile))

	if err := s.write(key.Species, db); err != nil {
		return err
	}
	s.logger.Debug("profile stored",
		slog.String("key", key.String()),
		slog.String("backend", BackendYAML),
		slog.Int("entries", db.Len()))

	return nil
}

// Close implements Store.
func (s *YAMLStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true

	return nil
}

// read loads the species file; a missing file surfaces fs.ErrNotExist and an
// empty one yields an empty Database.
func (s *YAMLStore) read(species string) (Database, error) {
	data, err := os.ReadFile(FileName(s.dir, species, YAMLExt))
	if err != nil {
		return nil, err
	}
	db := make(Database)
	if err := yaml.Unmarshal(data, &db); err != nil {
		return nil, fmt.Errorf("profiledb: decode %s: %w", species, err)
	}
	if db == nil {
		db = make(Database)
	}

	return db, nil
}

// write replaces the species file through a temporary sibling.
func (s *YAMLStore) write(species string, db Database) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("profiledb: create %s: %w", s.dir, err)
	}
	data, err := yaml.Marshal(db)
	if err != nil {
		return fmt.Errorf("profiledb: encode %s: %w", species, err)
	}

	path := FileName(s.dir, species, YAMLExt)
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+species+".*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), path)
}
