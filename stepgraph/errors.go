package stepgraph

import "errors"

// Sentinel errors for Step Graph operations.
var (
	// ErrRowShapeMismatch indicates a Row's length does not equal the
	// stage's column count — a programmer error, per the library's
	// fatal-validation contract.
	ErrRowShapeMismatch = errors.New("stepgraph: row length does not match stage column count")

	// ErrNonFiniteTime indicates a NaN or infinite timestamp was passed to
	// Append; only finite, real row timestamps are accepted (the synthetic
	// start/sink timestamps are an internal concern, never caller-supplied).
	ErrNonFiniteTime = errors.New("stepgraph: time must be finite")
)
