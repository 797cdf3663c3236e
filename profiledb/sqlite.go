package profiledb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"sync"

	"github.com/katalvlaran/sibeira/spline"

	_ "modernc.org/sqlite"
)

// SQLiteExt is the file extension of the sqlite backend.
const SQLiteExt = "db"

// SQLiteStore keeps each species database in <dir>/<species>.db, one row
// per (beam energy, kind, dimension).
type SQLiteStore struct {
	dir    string
	logger *slog.Logger

	mu     sync.Mutex
	dbs    map[string]*sql.DB
	closed bool
}

// NewSQLiteStore returns a store rooted at dir. Species databases are opened
// lazily and kept open until Close.
func NewSQLiteStore(dir string, opts ...Option) (*SQLiteStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: empty directory", ErrInvalidKey)
	}
	o := gatherOptions(opts)

	return &SQLiteStore{dir: dir, logger: o.logger, dbs: make(map[string]*sql.DB)}, nil
}

// Import implements Store.
func (s *SQLiteStore) Import(ctx context.Context, key Key) (*spline.LogLog, error) {
	if err := key.validate(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.open(ctx, key.Species, false)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, key.noSpecies()
	}
	if err != nil {
		return nil, err
	}

	var payload []byte
	err = db.QueryRowContext(ctx, `
		SELECT payload FROM profiles
		WHERE beam_energy = ? AND kind = ? AND dimension = ?
	`, key.EnergyKey(), key.Kind, key.DimensionKey()).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, key.notFound()
	}
	if err != nil {
		return nil, err
	}

	profile, err := DecodeRecord(payload)
	if err != nil {
		return nil, fmt.Errorf("decode profile %s: %w", key, err)
	}

	return profile, nil
}

// Export implements Store.
func (s *SQLiteStore) Export(ctx context.Context, key Key, profile *spline.LogLog) error {
	if err := key.validate(); err != nil {
		return err
	}
	if err := checkProfile(profile); err != nil {
		return err
	}
	payload, err := EncodeRecord(profile)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.open(ctx, key.Species, true)
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, `
		INSERT INTO profiles (beam_energy, kind, dimension, schema_version, payload)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(beam_energy, kind, dimension) DO UPDATE SET
			schema_version = excluded.schema_version,
			payload = excluded.payload
	`, key.EnergyKey(), key.Kind, key.DimensionKey(), CurrentSchemaVersion, payload)
	if err != nil {
		return err
	}
	s.logger.Debug("profile stored", slog.String("key", key.String()), slog.String("backend", BackendSQLite))

	return nil
}

// Close implements Store.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	var errs []error
	for name, db := range s.dbs {
		if err := db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", name, err))
		}
	}
	s.dbs = nil

	return errors.Join(errs...)
}

// open returns the handle of a species database. Without create, a missing
// file surfaces fs.ErrNotExist instead of being created empty.
func (s *SQLiteStore) open(ctx context.Context, species string, create bool) (*sql.DB, error) {
	if s.closed {
		return nil, ErrClosed
	}
	if db, ok := s.dbs[species]; ok {
		return db, nil
	}

	path := FileName(s.dir, species, SQLiteExt)
	if create {
		if err := os.MkdirAll(s.dir, 0o755); err != nil {
			return nil, fmt.Errorf("profiledb: create %s: %w", s.dir, err)
		}
	} else if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := createTables(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	s.dbs[species] = db

	return db, nil
}

func createTables(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS profiles (
			beam_energy TEXT NOT NULL,
			kind TEXT NOT NULL,
			dimension TEXT NOT NULL,
			schema_version INTEGER NOT NULL,
			payload BLOB NOT NULL,
			PRIMARY KEY (beam_energy, kind, dimension)
		);
	`)
	return err
}
