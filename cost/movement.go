package cost

import (
	"github.com/footfall/stepgraph/foot"
	"github.com/footfall/stepgraph/panel"
	"github.com/footfall/stepgraph/transition"
)

// Movement penalizes how far each freshly activated foot part traveled
// since it was last resting, scaled by speed (distance/dt).
//
// For each part activated this row: if that same part was already resting
// in prev.Final, and the same-side other role did not land at the exact
// column this part rested at (which would double-count a tap collapsing
// into — or expanding from — a bracket), add
// distance(prevCol, nextCol) / dt * MOVEMENT.
func Movement(stage *panel.Stage, prev, next transition.State, dt float64) float64 {
	var total float64
	for _, part := range foot.Parts {
		nextCol := next.Activated.IndexOf(part)
		if nextCol < 0 {
			continue
		}
		prevCol := prev.Final.IndexOf(part)
		if prevCol < 0 {
			continue
		}
		otherNextCol := next.Final.IndexOf(part.OtherPart())
		if otherNextCol == prevCol {
			continue
		}
		total += stage.Distance(prevCol, nextCol) / dt * MOVEMENT
	}
	return total
}
