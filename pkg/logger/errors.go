package logger

import "errors"

// ErrInvalidLevel is returned by ParseLevel for unrecognised level names.
var ErrInvalidLevel = errors.New("invalid log level")
