package evolve

import "errors"

// ErrShape reports a caller-supplied array that does not match the expected
// population shape. Shape errors are raised before any state mutation.
var ErrShape = errors.New("population shape mismatch")
