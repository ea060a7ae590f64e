// Package foot defines the foot-part taxonomy and the FootPlacement
// container used throughout the annotator: a tagged variant over
// {None, LeftHeel, LeftToe, RightHeel, RightToe}, plus the ordered
// placement-per-row type and its legality predicates.
package foot

// Side identifies which physical foot a Part belongs to.
type Side int

const (
	// SideNone is the zero value; only Part == None has this side.
	SideNone Side = iota
	SideLeft
	SideRight
)

// Role identifies whether a Part is the heel or toe of its Side.
type Role int

const (
	// RoleNone is the zero value; only Part == None has this role.
	RoleNone Role = iota
	RoleHeel
	RoleToe
)

// Part is a tagged variant over {None, LeftHeel, LeftToe, RightHeel, RightToe}.
type Part int

const (
	None Part = iota
	LeftHeel
	LeftToe
	RightHeel
	RightToe
)

// Parts lists every non-None Part in the traversal order the Placement
// Enumerator relies on (spec §4.2): LeftHeel, LeftToe, RightHeel, RightToe.
// This order is observable in tests and must not be reordered.
var Parts = [4]Part{LeftHeel, LeftToe, RightHeel, RightToe}

// Side returns the side of p, or SideNone if p == None.
func (p Part) Side() Side {
	switch p {
	case LeftHeel, LeftToe:
		return SideLeft
	case RightHeel, RightToe:
		return SideRight
	default:
		return SideNone
	}
}

// Role returns the role of p, or RoleNone if p == None.
func (p Part) Role() Role {
	switch p {
	case LeftHeel, RightHeel:
		return RoleHeel
	case LeftToe, RightToe:
		return RoleToe
	default:
		return RoleNone
	}
}

// OtherPart returns the same-side opposite-role part, or None if p == None.
// LeftHeel.OtherPart() == LeftToe, RightToe.OtherPart() == RightHeel, etc.
func (p Part) OtherPart() Part {
	switch p {
	case LeftHeel:
		return LeftToe
	case LeftToe:
		return LeftHeel
	case RightHeel:
		return RightToe
	case RightToe:
		return RightHeel
	default:
		return None
	}
}

// HeelOfSide returns the heel Part for s, or None for SideNone.
func HeelOfSide(s Side) Part {
	switch s {
	case SideLeft:
		return LeftHeel
	case SideRight:
		return RightHeel
	default:
		return None
	}
}

// ToeOfSide returns the toe Part for s, or None for SideNone.
func ToeOfSide(s Side) Part {
	switch s {
	case SideLeft:
		return LeftToe
	case SideRight:
		return RightToe
	default:
		return None
	}
}

// rune encodes p using the placement-string alphabet: '-' for None,
// 'L'/'l' for left heel/toe, 'R'/'r' for right heel/toe.
func (p Part) rune() byte {
	switch p {
	case LeftHeel:
		return 'L'
	case LeftToe:
		return 'l'
	case RightHeel:
		return 'R'
	case RightToe:
		return 'r'
	default:
		return '-'
	}
}

// partFromRune decodes a single placement-string byte into a Part.
// Returns (None, false) for any byte outside the alphabet.
func partFromRune(b byte) (Part, bool) {
	switch b {
	case 'L':
		return LeftHeel, true
	case 'l':
		return LeftToe, true
	case 'R':
		return RightHeel, true
	case 'r':
		return RightToe, true
	case '-':
		return None, true
	default:
		return None, false
	}
}
