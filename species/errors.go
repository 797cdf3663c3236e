package species

import "errors"

var (
	// ErrUnknownSpecies is returned when a symbol is absent from the
	// orbital table (for the requested ionisation) or from the mass table.
	ErrUnknownSpecies = errors.New("species: unknown species")

	// ErrMissingCharge is returned when an ion row has no U and no Z to derive it from.
	ErrMissingCharge = errors.New("species: ion row needs Z to derive U")

	// ErrBadTable is returned when the embedded or supplied table cannot be decoded.
	ErrBadTable = errors.New("species: malformed species table")
)
