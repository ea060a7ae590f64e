// Package placement implements the Placement Enumerator: depth-first
// generation of every legal FootPlacement covering the press-requiring
// columns of a Row.
package placement

import (
	"github.com/footfall/stepgraph/chart"
	"github.com/footfall/stepgraph/foot"
	"github.com/footfall/stepgraph/panel"
)

// Enumerate returns every legal Placement covering row's press-requiring
// columns on stage, in the order fixed by the foot-part traversal order
// {LeftHeel, LeftToe, RightHeel, RightToe} — this order is observable in
// tests and must be preserved.
//
// A placement is legal iff: no toe appears without its same-side heel, and
// every bracketing side's (heel, toe) pair satisfies the stage's bracket
// reach. The enumerator assumes a player never presses only a toe without
// the heel; callers requiring toe-only taps must extend it.
//
// Returns ErrRowShapeMismatch if len(row) != stage.Columns().
func Enumerate(stage *panel.Stage, row chart.Row) ([]foot.Placement, error) {
	if len(row) != stage.Columns() {
		return nil, ErrRowShapeMismatch
	}

	var results []foot.Placement
	current := foot.NewPlacement(len(row))
	enumerateColumn(stage, row, current, 0, &results)
	return results, nil
}

func enumerateColumn(stage *panel.Stage, row chart.Row, current foot.Placement, c int, results *[]foot.Placement) {
	if c == len(row) {
		if legal(stage, current) {
			*results = append(*results, current.Clone())
		}
		return
	}

	if !row[c].RequiresPress() {
		current[c] = foot.None
		enumerateColumn(stage, row, current, c+1, results)
		return
	}

	for _, part := range foot.Parts {
		if current.Contains(part) {
			continue
		}
		current[c] = part
		enumerateColumn(stage, row, current, c+1, results)
	}
	current[c] = foot.None
}

// legal checks the two rejection rules from the spec: a toe without its
// same-side heel, and a bracketing side whose reach is invalid.
func legal(stage *panel.Stage, p foot.Placement) bool {
	for _, side := range []foot.Side{foot.SideLeft, foot.SideRight} {
		heelCol := p.IndexOf(foot.HeelOfSide(side))
		toeCol := p.IndexOf(foot.ToeOfSide(side))
		if toeCol >= 0 && heelCol < 0 {
			return false
		}
		if heelCol >= 0 && toeCol >= 0 && !stage.IsValidBracket(heelCol, toeCol) {
			return false
		}
	}
	return true
}
