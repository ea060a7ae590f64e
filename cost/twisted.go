package cost

import (
	"github.com/footfall/stepgraph/foot"
	"github.com/footfall/stepgraph/panel"
	"github.com/footfall/stepgraph/transition"
)

// sideAverage returns the midpoint of side's heel and toe in p (heel alone
// if the toe is absent), and whether the side has any foot resting at all.
func sideAverage(stage *panel.Stage, p foot.Placement, side foot.Side) (panel.Position, bool) {
	heelCol := p.IndexOf(foot.HeelOfSide(side))
	if heelCol < 0 {
		return panel.Position{}, false
	}
	toeCol := p.IndexOf(foot.ToeOfSide(side))
	if toeCol < 0 {
		return stage.Position(heelCol), true
	}
	return stage.AveragePosition(heelCol, toeCol), true
}

// Twisted penalizes a toe resting behind its same-side heel (stage-y),
// unless the feet are already crossed over — a crossover is scored
// elsewhere and is not additionally penalized as a twist.
func Twisted(stage *panel.Stage, next transition.State) float64 {
	left, leftOK := sideAverage(stage, next.Final, foot.SideLeft)
	right, rightOK := sideAverage(stage, next.Final, foot.SideRight)
	if !leftOK || !rightOK {
		return 0
	}
	if right.X < left.X {
		return 0 // crossover, not a twist.
	}

	if sideTwisted(stage, next.Final, foot.SideLeft) || sideTwisted(stage, next.Final, foot.SideRight) {
		return TWISTED
	}
	return 0
}

func sideTwisted(stage *panel.Stage, p foot.Placement, side foot.Side) bool {
	heelCol := p.IndexOf(foot.HeelOfSide(side))
	toeCol := p.IndexOf(foot.ToeOfSide(side))
	if heelCol < 0 || toeCol < 0 {
		return false
	}
	return stage.Position(toeCol).Y < stage.Position(heelCol).Y
}
