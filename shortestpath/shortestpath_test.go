package shortestpath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/footfall/stepgraph/foot"
	"github.com/footfall/stepgraph/graphstore"
	"github.com/footfall/stepgraph/ordtime"
	"github.com/footfall/stepgraph/shortestpath"
	"github.com/footfall/stepgraph/transition"
)

func node(t *testing.T, store *graphstore.Store, seconds float32, s string) string {
	t.Helper()
	p, err := foot.ParsePlacement(s)
	require.NoError(t, err)
	state := transition.State{Activated: p, Final: p}
	return store.EnsureNode(ordtime.New(seconds), state)
}

func TestRun_PicksCheaperOfTwoPaths(t *testing.T) {
	store := graphstore.NewStore()
	a := node(t, store, 0, "----")
	b := node(t, store, 1, "L---")
	c := node(t, store, 1, "R---")
	d := node(t, store, 2, "----")

	_, err := store.EnsureEdge(a, b, 5.0)
	require.NoError(t, err)
	_, err = store.EnsureEdge(a, c, 1.0)
	require.NoError(t, err)
	_, err = store.EnsureEdge(b, d, 1.0)
	require.NoError(t, err)
	_, err = store.EnsureEdge(c, d, 1.0)
	require.NoError(t, err)

	result, err := shortestpath.Run(store, a, d)
	require.NoError(t, err)
	assert.Equal(t, []string{a, c, d}, result.Path)
	assert.InDelta(t, 2.0, result.Weight, 1e-9)
}

func TestRun_DeterministicTieBreak(t *testing.T) {
	store := graphstore.NewStore()
	a := node(t, store, 0, "----")
	b := node(t, store, 1, "L---")
	c := node(t, store, 1, "R---")
	d := node(t, store, 2, "----")

	// Both routes cost exactly the same; the first one pushed onto the heap
	// (a->b->d) must win the tie.
	_, err := store.EnsureEdge(a, b, 1.0)
	require.NoError(t, err)
	_, err = store.EnsureEdge(a, c, 1.0)
	require.NoError(t, err)
	_, err = store.EnsureEdge(b, d, 1.0)
	require.NoError(t, err)
	_, err = store.EnsureEdge(c, d, 1.0)
	require.NoError(t, err)

	result, err := shortestpath.Run(store, a, d)
	require.NoError(t, err)
	assert.Equal(t, []string{a, b, d}, result.Path)
}

func TestRun_Unreachable(t *testing.T) {
	store := graphstore.NewStore()
	a := node(t, store, 0, "----")
	b := node(t, store, 1, "L---")

	_, err := shortestpath.Run(store, a, b)
	assert.ErrorIs(t, err, shortestpath.ErrUnreachable)
}

func TestRun_SourceNotFound(t *testing.T) {
	store := graphstore.NewStore()
	b := node(t, store, 1, "L---")

	_, err := shortestpath.Run(store, "n404", b)
	assert.ErrorIs(t, err, shortestpath.ErrSourceNotFound)
}

func TestRun_EmptySourceOrSink(t *testing.T) {
	store := graphstore.NewStore()
	a := node(t, store, 0, "----")

	_, err := shortestpath.Run(store, "", a)
	assert.ErrorIs(t, err, shortestpath.ErrEmptySource)

	_, err = shortestpath.Run(store, a, "")
	assert.ErrorIs(t, err, shortestpath.ErrEmptySink)
}

func TestRun_SourceEqualsSink(t *testing.T) {
	store := graphstore.NewStore()
	a := node(t, store, 0, "----")

	result, err := shortestpath.Run(store, a, a)
	require.NoError(t, err)
	assert.Equal(t, []string{a}, result.Path)
	assert.Zero(t, result.Weight)
}
