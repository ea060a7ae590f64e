// Package transition implements the post-row State and its transition
// rule: which foot part remains on which panel after a row is played,
// honoring bracket holds, toe-vs-heel inheritance, and bracket-to-tap
// collapses.
package transition

import "github.com/footfall/stepgraph/foot"

// State is the foot footprint after a row has been played.
//
// Activated holds only the parts freshly placed by this row (transient
// "what moved here"); Final holds the full resting footprint, inherited
// from the previous state plus this row's activations — the view the
// facing, twisted-foot and mine terms read. The double-step term reads
// Activated on both sides instead.
type State struct {
	Activated foot.Placement
	Final     foot.Placement
}

// NewState returns the all-None state for a stage of the given column count.
// Used as the Step Graph's synthetic start-node state.
func NewState(columns int) State {
	return State{
		Activated: foot.NewPlacement(columns),
		Final:     foot.NewPlacement(columns),
	}
}

// Append computes the successor state from applying placement p (this
// row's pressed columns) on top of s (the previous resting footprint).
//
// Rule (spec 4.3):
//  1. Start from an all-None state.
//  2. Copy p's non-None entries into Activated.
//  3. For each column: if Activated there, Final takes it. Otherwise,
//     inherit the previous Final there iff it is non-None and that part
//     does not appear anywhere in Activated — except that a toe is never
//     inherited if its same-side heel appears in Activated (a bracket just
//     collapsed to a tap on the heel side).
func (s State) Append(p foot.Placement) State {
	columns := len(s.Final)
	next := NewState(columns)

	for c, part := range p {
		if part != foot.None {
			next.Activated[c] = part
		}
	}

	for c := range next.Final {
		if next.Activated[c] != foot.None {
			next.Final[c] = next.Activated[c]
			continue
		}
		prevPart := s.Final[c]
		if prevPart == foot.None {
			continue
		}
		if next.Activated.Contains(prevPart) {
			continue
		}
		if prevPart.Role() == foot.RoleToe {
			heel := foot.HeelOfSide(prevPart.Side())
			if next.Activated.Contains(heel) {
				continue
			}
		}
		next.Final[c] = prevPart
	}

	return next
}
