package cost

import (
	"github.com/footfall/stepgraph/foot"
	"github.com/footfall/stepgraph/transition"
)

// Jack penalizes the same foot hitting the same panel on consecutive rows
// at high speed. Only applies when dt is at or below JACK_T.
//
// A side is jacked if its heel (or its toe) lands on a column that already
// held the exact same part in prev.Final. Only parts pressed this row
// (next.Activated) count; a foot merely still resting there does not.
func Jack(prev, next transition.State, dt float64) float64 {
	if dt > JACK_T {
		return 0
	}
	timeCost := 1/(JACK_T-dt) - 1/JACK_T

	var jackedSides int
	for _, side := range []foot.Side{foot.SideLeft, foot.SideRight} {
		if sideJacked(prev, next, side) {
			jackedSides++
		}
	}
	return float64(jackedSides) * timeCost * JACK
}

func sideJacked(prev, next transition.State, side foot.Side) bool {
	heel := foot.HeelOfSide(side)
	if heelCol := next.Activated.IndexOf(heel); heelCol >= 0 && prev.Final[heelCol] == heel {
		return true
	}
	toe := foot.ToeOfSide(side)
	if toeCol := next.Activated.IndexOf(toe); toeCol >= 0 && prev.Final[toeCol] == toe {
		return true
	}
	return false
}
