package cost

import (
	"math"

	"github.com/footfall/stepgraph/foot"
	"github.com/footfall/stepgraph/transition"
)

// SlowBracket penalizes holding a bracket for a long time: if next freshly
// activates a bracket on either side and dt exceeds SLOW_BRACKET_T, the
// excess duration is penalized. A bracket merely inherited from an earlier
// row (already resting, nothing pressed this row) is not charged again.
//
// dt is +Inf for the edge out of the Step Graph's synthetic start node
// (there is no prior row to measure a duration against); that edge never
// incurs this penalty, since an infinite hold duration is not a meaningful
// excess to charge and would otherwise violate the finite-edge-weight
// invariant.
func SlowBracket(next transition.State, dt float64) float64 {
	if !next.Activated.IsBracketing(foot.SideLeft) && !next.Activated.IsBracketing(foot.SideRight) {
		return 0
	}
	if math.IsInf(dt, 1) {
		return 0
	}
	if dt < SLOW_BRACKET_T {
		return 0
	}
	return (dt - SLOW_BRACKET_T) * SLOW_BRACKET
}
