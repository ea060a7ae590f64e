package foot

import "strings"

// Placement is an ordered sequence of Part, one per stage column.
//
// Invariant: each non-None Part appears at most once (a body has one left
// heel, one left toe, one right heel, one right toe). Callers that build a
// Placement column-by-column (the enumerator, ParsePlacement) must enforce
// this themselves via Contains/SetChecked; Placement itself is a plain
// value type and does not re-validate on every read.
type Placement []Part

// NewPlacement returns a Placement of the given length, every column None.
func NewPlacement(columns int) Placement {
	return make(Placement, columns)
}

// Clone returns an independent copy of p.
func (p Placement) Clone() Placement {
	out := make(Placement, len(p))
	copy(out, p)
	return out
}

// Contains reports whether part appears anywhere in p. Contains(None)
// always reports false: None is not a "part" for uniqueness purposes.
func (p Placement) Contains(part Part) bool {
	if part == None {
		return false
	}
	for _, q := range p {
		if q == part {
			return true
		}
	}
	return false
}

// SetChecked assigns part at column c, returning ErrDuplicatePart if part is
// already present elsewhere in p. Used by ParsePlacement; the enumerator,
// the other place that builds a Placement incrementally, checks Contains
// itself before assigning.
func (p Placement) SetChecked(c int, part Part) error {
	if part != None && p.Contains(part) {
		return ErrDuplicatePart
	}
	p[c] = part
	return nil
}

// IndexOf returns the column holding part, or -1 if part is absent or None.
func (p Placement) IndexOf(part Part) int {
	if part == None {
		return -1
	}
	for c, q := range p {
		if q == part {
			return c
		}
	}
	return -1
}

// IsBracketing reports whether both the heel and toe of side s are present
// in p (one foot pressing two panels).
func (p Placement) IsBracketing(s Side) bool {
	return p.IndexOf(HeelOfSide(s)) >= 0 && p.IndexOf(ToeOfSide(s)) >= 0
}

// String renders p using the debug/testing placement-string format: '-' for
// None, 'L'/'l' for left heel/toe, 'R'/'r' for right heel/toe.
func (p Placement) String() string {
	var b strings.Builder
	b.Grow(len(p))
	for _, part := range p {
		b.WriteByte(part.rune())
	}
	return b.String()
}

// ParsePlacement decodes the placement-string format produced by String.
// Returns ErrBadPlacementString for any byte outside the alphabet, and
// ErrDuplicatePart if the same non-None part appears twice.
func ParsePlacement(s string) (Placement, error) {
	p := NewPlacement(len(s))
	for c := 0; c < len(s); c++ {
		part, ok := partFromRune(s[c])
		if !ok {
			return nil, ErrBadPlacementString
		}
		if err := p.SetChecked(c, part); err != nil {
			return nil, err
		}
	}
	return p, nil
}
