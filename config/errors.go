package config

import "errors"

// ErrInvalidConfig indicates a configuration that failed validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")
