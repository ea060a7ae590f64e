package transition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/footfall/stepgraph/foot"
	"github.com/footfall/stepgraph/transition"
)

func place(t *testing.T, s string) foot.Placement {
	t.Helper()
	p, err := foot.ParsePlacement(s)
	require.NoError(t, err)
	return p
}

func TestAppend_ActivatedMirrorsPlacement(t *testing.T) {
	start := transition.NewState(4)
	next := start.Append(place(t, "L-R-"))
	assert.Equal(t, "L-R-", next.Activated.String())
}

func TestAppend_InheritsRestingFoot(t *testing.T) {
	prev := transition.State{Final: place(t, "-R--")}
	next := prev.Append(place(t, "L---"))
	assert.Equal(t, "LR--", next.Final.String())
}

func TestAppend_DropsFootThatMovedAway(t *testing.T) {
	// Right heel was resting at column 1; this row moves the right foot's
	// heel to column 3, so column 1 must not keep a stale entry.
	prev := transition.State{Final: place(t, "L-R-")}
	next := prev.Append(place(t, "---R"))
	assert.Equal(t, "L--R", next.Final.String())
}

func TestAppend_BracketCollapsesToTap(t *testing.T) {
	// Previous state: left foot bracketing columns 0 (heel) and 1 (toe).
	prev := transition.State{Final: place(t, "Ll--")}
	// This row presses the left heel again (tap); the toe must not be
	// re-inherited even though nothing explicitly moved it.
	next := prev.Append(place(t, "L---"))
	assert.Equal(t, "L---", next.Final.String())
}

func TestAppend_PreservesBracketWhenUntouched(t *testing.T) {
	prev := transition.State{Final: place(t, "Ll--")}
	next := prev.Append(place(t, "--R-"))
	assert.Equal(t, "LlR-", next.Final.String())
}

func TestAppend_FinalNeverInventsAPart(t *testing.T) {
	// Every Final[c] is either Activated[c], or the inherited prior
	// Final[c], or None — never anything else.
	prev := transition.State{Final: place(t, "L-rR")}
	next := prev.Append(place(t, "--L-"))
	for c := range next.Final {
		ok := next.Final[c] == next.Activated[c] ||
			next.Final[c] == prev.Final[c] ||
			next.Final[c] == foot.None
		assert.True(t, ok, "column %d: final=%v activated=%v prev=%v", c, next.Final[c], next.Activated[c], prev.Final[c])
	}
}
