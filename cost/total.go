package cost

import (
	"github.com/footfall/stepgraph/chart"
	"github.com/footfall/stepgraph/panel"
	"github.com/footfall/stepgraph/transition"
)

// Total sums the eight weighted penalty terms for the edge
// (prev, dt, next) scored against row. Every term is non-negative and
// finite for dt > 0 (and for the +Inf dt of the start edge), except at
// dt == JACK_T exactly, where Jack's 1/(JACK_T-dt) factor is unbounded.
func Total(stage *panel.Stage, row chart.Row, prev, next transition.State, dt float64) float64 {
	return Movement(stage, prev, next, dt) +
		Facing(stage, next) +
		Doublestep(stage, prev, next, dt) +
		Mine(row, next) +
		Twisted(stage, next) +
		SlowBracket(next, dt) +
		Jack(prev, next, dt) +
		Footswitch(stage, prev, next, dt)
}
