package profile

import "errors"

var (
	// ErrInvalidInput indicates a missing or non-positive electron
	// temperature, or a negative density.
	ErrInvalidInput = errors.New("profile: invalid plasma state")

	// ErrInvalidLadder indicates reference energies that are too few,
	// non-positive, NaN or not strictly increasing.
	ErrInvalidLadder = errors.New("profile: invalid reference energies")

	// ErrNotBuilt indicates a spline that was neither built nor imported.
	ErrNotBuilt = errors.New("profile: profile not built")

	// ErrNoStore indicates Import/Export on a builder without a store.
	ErrNoStore = errors.New("profile: no profile store configured")
)
