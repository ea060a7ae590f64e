package placement

import "errors"

// ErrRowShapeMismatch indicates a Row's length does not equal the stage's
// column count — a programmer error, signaled fatally per the core's error
// handling contract (shape mismatches are never recoverable).
var ErrRowShapeMismatch = errors.New("placement: row length does not match stage column count")
