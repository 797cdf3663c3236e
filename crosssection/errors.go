package crosssection

import "errors"

var (
	// ErrInvalidIonisationLevel indicates an ionisation level other than 0 or 1.
	ErrInvalidIonisationLevel = errors.New("crosssection: invalid ionisation level")

	// ErrInvalidTarget indicates a species without a row in the Tabata table.
	// It is always joined with species.ErrUnknownSpecies.
	ErrInvalidTarget = errors.New("crosssection: invalid species for Tabata database")

	// ErrInvalidDegree indicates a Tabata degree other than single or double.
	ErrInvalidDegree = errors.New("crosssection: invalid charge-exchange degree")

	// ErrBrokenDatabase indicates a Tabata row with a missing fit column.
	ErrBrokenDatabase = errors.New("crosssection: broken database, missing argument")

	// ErrNoTabataTable indicates a Tabata model requested without a fit table.
	ErrNoTabataTable = errors.New("crosssection: no Tabata table configured")

	// ErrMalformedTable indicates a Tabata table that cannot be parsed at all.
	ErrMalformedTable = errors.New("crosssection: malformed table")
)
