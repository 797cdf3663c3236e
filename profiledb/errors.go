package profiledb

import "errors"

var (
	// ErrNoProfileForSpecies indicates that the species has no database yet.
	ErrNoProfileForSpecies = errors.New("profiledb: no profile database for species")

	// ErrProfileNotFound indicates that the species database lacks the
	// requested beam energy, kind or dimension.
	ErrProfileNotFound = errors.New("profiledb: profile not found")

	// ErrInvalidKey indicates an empty species or kind, a species that is not
	// a plain file name, or a non-finite beam energy.
	ErrInvalidKey = errors.New("profiledb: invalid key")

	// ErrUnsupportedBackend indicates an unknown backend name.
	ErrUnsupportedBackend = errors.New("profiledb: unsupported backend")

	// ErrVersionMismatch indicates a stored record of another schema version.
	ErrVersionMismatch = errors.New("profiledb: record version mismatch")

	// ErrClosed indicates use of a closed store.
	ErrClosed = errors.New("profiledb: store is closed")
)
