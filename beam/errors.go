package beam

import "errors"

// ErrInvalidInput indicates a beam energy that is negative or not a finite number.
var ErrInvalidInput = errors.New("beam: invalid input")
