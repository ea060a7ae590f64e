package cost

import (
	"math"

	"github.com/footfall/stepgraph/foot"
	"github.com/footfall/stepgraph/panel"
	"github.com/footfall/stepgraph/transition"
)

// facingPenalty applies p(v) = max(0, -v)^1.8: only negative facing (crossed
// or rotated) is penalized, and the cost grows super-linearly.
func facingPenalty(v float64) float64 {
	return math.Pow(math.Max(0, -v), 1.8)
}

// xDiffOrZero returns stage.XDifference(a,b), or 0 if either index is
// absent (a missing pair contributes 0 to the facing sum).
func xDiffOrZero(stage *panel.Stage, a, b int) float64 {
	if a < 0 || b < 0 {
		return 0
	}
	return stage.XDifference(a, b)
}

func yDiffOrZero(stage *panel.Stage, a, b int) float64 {
	if a < 0 || b < 0 {
		return 0
	}
	return stage.YDifference(a, b)
}

// Facing penalizes crossed or rotated body orientation in next.Final.
// Toe indices fall back to the same-side heel index when the toe is
// absent, per the spec's fallback rule.
func Facing(stage *panel.Stage, next transition.State) float64 {
	lh := next.Final.IndexOf(foot.LeftHeel)
	rh := next.Final.IndexOf(foot.RightHeel)

	lt := next.Final.IndexOf(foot.LeftToe)
	if lt < 0 {
		lt = lh
	}
	rt := next.Final.IndexOf(foot.RightToe)
	if rt < 0 {
		rt = rh
	}

	heelFacing := xDiffOrZero(stage, lh, rh)
	toeFacing := xDiffOrZero(stage, lt, rt)
	leftFacing := yDiffOrZero(stage, lh, lt)
	rightFacing := yDiffOrZero(stage, rh, rt)

	sum := facingPenalty(heelFacing) + facingPenalty(toeFacing) +
		facingPenalty(leftFacing) + facingPenalty(rightFacing)

	return FACING * sum
}
