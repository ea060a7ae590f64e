package cost

import (
	"math"

	"github.com/footfall/stepgraph/foot"
	"github.com/footfall/stepgraph/panel"
	"github.com/footfall/stepgraph/transition"
)

// activatedSides returns the distinct sides touched by p's non-None columns.
func activatedSides(p foot.Placement) map[foot.Side]bool {
	sides := make(map[foot.Side]bool, 2)
	for _, part := range p {
		if part != foot.None {
			sides[part.Side()] = true
		}
	}
	return sides
}

// isTwoSideJump reports whether p activates both feet at once.
func isTwoSideJump(p foot.Placement) bool {
	sides := activatedSides(p)
	return sides[foot.SideLeft] && sides[foot.SideRight]
}

// Doublestep penalizes the same foot hitting two different panels on
// consecutive rows, breaking alternation. Applies only when exactly one
// side is activated in next, and never when either state is a two-side
// jump. A pure jack (identical heel and toe columns between prev and next)
// costs nothing here — see Jack instead.
func Doublestep(stage *panel.Stage, prev, next transition.State, dt float64) float64 {
	sides := activatedSides(next.Activated)
	if len(sides) != 1 {
		return 0
	}
	if isTwoSideJump(prev.Activated) || isTwoSideJump(next.Activated) {
		return 0
	}

	var side foot.Side
	for s := range sides {
		side = s
	}

	heel := foot.HeelOfSide(side)
	toe := foot.ToeOfSide(side)

	heelPrevCol := prev.Activated.IndexOf(heel)
	if heelPrevCol < 0 {
		return 0
	}
	heelNextCol := next.Activated.IndexOf(heel)
	toePrevCol := prev.Activated.IndexOf(toe)
	toeNextCol := next.Activated.IndexOf(toe)

	if heelPrevCol == heelNextCol && toePrevCol == toeNextCol {
		return 0 // pure jack: identical footprint, no step at all.
	}

	return DOUBLESTEP * math.Pow(stage.Distance(heelPrevCol, heelNextCol), 3)
}
