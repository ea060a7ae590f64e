package cost

import (
	"github.com/footfall/stepgraph/chart"
	"github.com/footfall/stepgraph/foot"
	"github.com/footfall/stepgraph/transition"
)

// Mine penalizes any foot resting on a column whose row note is Mine,
// whether that foot just landed there or was already resting there.
func Mine(row chart.Row, next transition.State) float64 {
	var total float64
	for c, note := range row {
		if note.RequiresRelease() && next.Final[c] != foot.None {
			total += MINE
		}
	}
	return total
}
