package decomposer

import "errors"

// ErrUnknownDecomposer is returned when no engine is registered under the requested name.
var ErrUnknownDecomposer = errors.New("unknown user agent decomposer")
