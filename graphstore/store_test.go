package graphstore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/footfall/stepgraph/foot"
	"github.com/footfall/stepgraph/graphstore"
	"github.com/footfall/stepgraph/ordtime"
	"github.com/footfall/stepgraph/transition"
)

func mustPlacement(t *testing.T, s string) foot.Placement {
	t.Helper()
	p, err := foot.ParsePlacement(s)
	require.NoError(t, err)
	return p
}

func TestStore_EnsureNode_DedupsIdenticalState(t *testing.T) {
	s := graphstore.NewStore()
	state := transition.State{Activated: mustPlacement(t, "L---"), Final: mustPlacement(t, "L---")}

	id1 := s.EnsureNode(ordtime.New(1.0), state)
	id2 := s.EnsureNode(ordtime.New(1.0), state)

	assert.Equal(t, id1, id2)
	assert.Equal(t, 1, s.NodeCount())
}

func TestStore_EnsureNode_DistinctTimesAreDistinctNodes(t *testing.T) {
	s := graphstore.NewStore()
	state := transition.State{Activated: mustPlacement(t, "L---"), Final: mustPlacement(t, "L---")}

	id1 := s.EnsureNode(ordtime.New(1.0), state)
	id2 := s.EnsureNode(ordtime.New(2.0), state)

	assert.NotEqual(t, id1, id2)
	assert.Equal(t, 2, s.NodeCount())
}

func TestStore_EnsureNode_DistinctStatesAreDistinctNodes(t *testing.T) {
	s := graphstore.NewStore()
	left := transition.State{Activated: mustPlacement(t, "L---"), Final: mustPlacement(t, "L---")}
	right := transition.State{Activated: mustPlacement(t, "R---"), Final: mustPlacement(t, "R---")}

	id1 := s.EnsureNode(ordtime.New(1.0), left)
	id2 := s.EnsureNode(ordtime.New(1.0), right)

	assert.NotEqual(t, id1, id2)
}

func TestStore_Node_NotFound(t *testing.T) {
	s := graphstore.NewStore()
	_, err := s.Node("n404")
	assert.ErrorIs(t, err, graphstore.ErrNodeNotFound)
}

func TestStore_EnsureEdge_DedupsIdenticalTriple(t *testing.T) {
	s := graphstore.NewStore()
	state := transition.State{Activated: mustPlacement(t, "L---"), Final: mustPlacement(t, "L---")}
	from := s.EnsureNode(ordtime.New(0), state)
	to := s.EnsureNode(ordtime.New(1), state)

	id1, err := s.EnsureEdge(from, to, 1.5)
	require.NoError(t, err)
	id2, err := s.EnsureEdge(from, to, 1.5)
	require.NoError(t, err)

	assert.Equal(t, id1, id2)
	assert.Equal(t, 1, s.EdgeCount())
}

func TestStore_EnsureEdge_DistinctWeightsAreDistinctEdges(t *testing.T) {
	s := graphstore.NewStore()
	state := transition.State{Activated: mustPlacement(t, "L---"), Final: mustPlacement(t, "L---")}
	from := s.EnsureNode(ordtime.New(0), state)
	to := s.EnsureNode(ordtime.New(1), state)

	id1, err := s.EnsureEdge(from, to, 1.5)
	require.NoError(t, err)
	id2, err := s.EnsureEdge(from, to, 1.50000001)
	require.NoError(t, err)

	assert.NotEqual(t, id1, id2)
}

func TestStore_EnsureEdge_UnknownEndpointFails(t *testing.T) {
	s := graphstore.NewStore()
	state := transition.State{Activated: mustPlacement(t, "L---"), Final: mustPlacement(t, "L---")}
	from := s.EnsureNode(ordtime.New(0), state)

	_, err := s.EnsureEdge(from, "n404", 1.0)
	assert.ErrorIs(t, err, graphstore.ErrNodeNotFound)
}

func TestStore_EdgesFrom_ReturnsOnlyOutgoing(t *testing.T) {
	s := graphstore.NewStore()
	state := transition.State{Activated: mustPlacement(t, "L---"), Final: mustPlacement(t, "L---")}
	a := s.EnsureNode(ordtime.New(0), state)
	b := s.EnsureNode(ordtime.New(1), state)
	c := s.EnsureNode(ordtime.New(2), state)

	_, err := s.EnsureEdge(a, b, 1.0)
	require.NoError(t, err)
	_, err = s.EnsureEdge(b, c, 2.0)
	require.NoError(t, err)

	fromA := s.EdgesFrom(a)
	require.Len(t, fromA, 1)
	assert.Equal(t, b, fromA[0].To)
}

func TestStore_RemoveNode_DropsIncidentEdges(t *testing.T) {
	s := graphstore.NewStore()
	state := transition.State{Activated: mustPlacement(t, "L---"), Final: mustPlacement(t, "L---")}
	a := s.EnsureNode(ordtime.New(0), state)
	b := s.EnsureNode(ordtime.New(1), state)
	c := s.EnsureNode(ordtime.New(2), state)

	_, err := s.EnsureEdge(a, b, 1.0)
	require.NoError(t, err)
	_, err = s.EnsureEdge(b, c, 1.0)
	require.NoError(t, err)

	require.NoError(t, s.RemoveNode(b))

	_, err = s.Node(b)
	assert.ErrorIs(t, err, graphstore.ErrNodeNotFound)
	assert.Equal(t, 0, s.EdgeCount())
	assert.Empty(t, s.EdgesFrom(a))
}

func TestStore_RemoveNode_NotFound(t *testing.T) {
	s := graphstore.NewStore()
	assert.ErrorIs(t, s.RemoveNode("n404"), graphstore.ErrNodeNotFound)
}

func TestStore_RemoveNode_AllowsReinsertionOfSameState(t *testing.T) {
	s := graphstore.NewStore()
	state := transition.State{Activated: mustPlacement(t, "L---"), Final: mustPlacement(t, "L---")}
	tm := ordtime.New(5)
	a := s.EnsureNode(tm, state)
	require.NoError(t, s.RemoveNode(a))

	b := s.EnsureNode(tm, state)
	assert.Equal(t, 1, s.NodeCount())
	_, err := s.Node(b)
	require.NoError(t, err)
}

func TestStore_Edges_SortedByID(t *testing.T) {
	s := graphstore.NewStore()
	state := transition.State{Activated: mustPlacement(t, "L---"), Final: mustPlacement(t, "L---")}
	a := s.EnsureNode(ordtime.New(0), state)
	b := s.EnsureNode(ordtime.New(1), state)
	c := s.EnsureNode(ordtime.New(2), state)

	_, err := s.EnsureEdge(b, c, 1.0)
	require.NoError(t, err)
	_, err = s.EnsureEdge(a, b, 1.0)
	require.NoError(t, err)

	edges := s.Edges()
	require.Len(t, edges, 2)
	assert.Less(t, edges[0].ID, edges[1].ID)
}
