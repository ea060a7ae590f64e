package cost

import (
	"github.com/footfall/stepgraph/foot"
	"github.com/footfall/stepgraph/panel"
	"github.com/footfall/stepgraph/transition"
)

// Footswitch penalizes a slow same-panel handoff between feet: only
// applies when dt is at or above SLOW_FOOTSWITCH_T and exactly one side
// is activated in next.
//
// The first column (in row order) where prev.Final held a foot and
// next.Activated placed a different-sided foot is the one that determines
// both the cost and whether SIDESWITCH applies — only the first such
// column is probed, matching the reference annotator's order-dependent
// behavior (see DESIGN.md).
func Footswitch(stage *panel.Stage, prev, next transition.State, dt float64) float64 {
	if dt < SLOW_FOOTSWITCH_T {
		return 0
	}
	if len(activatedSides(next.Activated)) != 1 {
		return 0
	}

	for c := range next.Final {
		prevPart := prev.Final[c]
		nextPart := next.Activated[c]
		if prevPart == foot.None || nextPart == foot.None {
			continue
		}
		if prevPart.Side() == nextPart.Side() {
			continue
		}

		timeCost := (dt - SLOW_FOOTSWITCH_T) / dt
		result := timeCost * SLOW_FOOTSWITCH
		if stage.IsSidePanel(c) {
			result += SIDESWITCH
		}
		return result
	}
	return 0
}
