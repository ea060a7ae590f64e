package foot

import "errors"

// Sentinel errors for the foot package. Validation errors here are about
// malformed input data (e.g. a placement string of the wrong shape or
// alphabet) rather than the biomechanical legality rules enforced by
// package placement — those are checked by the enumerator, not here.
var (
	// ErrDuplicatePart indicates the same non-None Part appears twice in a
	// Placement (a body has exactly one left heel, etc.).
	ErrDuplicatePart = errors.New("foot: part appears more than once in placement")

	// ErrBadPlacementString indicates ParsePlacement received a string
	// containing a byte outside the {'-','L','l','R','r'} alphabet.
	ErrBadPlacementString = errors.New("foot: invalid placement string character")
)
