// Package stepgraph is the central orchestrator: it owns the implicit state
// graph, drives the streaming frontier expansion on Append, and extracts the
// lowest-cost row-by-row placement sequence on ComputePath.
//
// Construction-then-stream-then-extract is the whole contract: New, then any
// number of Append calls in time order, then ComputePath.
package stepgraph

import (
	"errors"
	"math"

	"github.com/footfall/stepgraph/chart"
	"github.com/footfall/stepgraph/cost"
	"github.com/footfall/stepgraph/foot"
	"github.com/footfall/stepgraph/graphstore"
	"github.com/footfall/stepgraph/ordtime"
	"github.com/footfall/stepgraph/panel"
	"github.com/footfall/stepgraph/placement"
	"github.com/footfall/stepgraph/shortestpath"
	"github.com/footfall/stepgraph/transition"
)

// StepGraph streams chart rows into an implicit state graph and extracts the
// lowest-cost annotation path on request.
//
// Not safe for concurrent use: Append and ComputePath must be externally
// serialised by the caller, same as the Step Graph's synthetic frontier
// state is single-threaded by design (spec's scheduling model).
type StepGraph struct {
	stage    *panel.Stage
	store    *graphstore.Store
	frontier []string
	startID  string
}

// New builds a StepGraph over stage, with a synthetic start node at
// (time = -Inf, empty State) already indexed and seeded as the frontier.
func New(stage *panel.Stage) *StepGraph {
	store := graphstore.NewStore()
	startState := transition.NewState(stage.Columns())
	startID := store.EnsureNode(ordtime.NegInf(), startState)

	return &StepGraph{
		stage:    stage,
		store:    store,
		frontier: []string{startID},
		startID:  startID,
	}
}

// Append expands the frontier by one row: every frontier node is combined
// with every legal placement for row, producing (deduplicated) successor
// nodes and weighted edges scored by the cost model. The new frontier
// replaces the old one.
//
// Preconditions: len(row) == stage column count (ErrRowShapeMismatch);
// timeSeconds is finite (ErrNonFiniteTime). Rows are assumed to arrive in
// non-decreasing time order; this is not enforced, per the library's
// synchronous, trust-the-caller contract.
func (g *StepGraph) Append(timeSeconds float32, row chart.Row) error {
	if math.IsNaN(float64(timeSeconds)) || math.IsInf(float64(timeSeconds), 0) {
		return ErrNonFiniteTime
	}
	placements, err := placement.Enumerate(g.stage, row)
	if err != nil {
		return ErrRowShapeMismatch
	}

	t := ordtime.New(timeSeconds)

	var newFrontier []string
	seen := make(map[string]bool)

	for _, u := range g.frontier {
		uNode, err := g.store.Node(u)
		if err != nil {
			// The frontier only ever holds IDs this StepGraph created itself.
			panic("stepgraph: frontier node missing from store: " + err.Error())
		}

		for _, p := range placements {
			nextState := uNode.State.Append(p)
			v := g.store.EnsureNode(t, nextState)
			if !seen[v] {
				seen[v] = true
				newFrontier = append(newFrontier, v)
			}

			dt := t.Sub(uNode.Time)
			weight := cost.Total(g.stage, row, uNode.State, nextState, dt)
			if _, err := g.store.EnsureEdge(u, v, weight); err != nil {
				panic("stepgraph: frontier edge endpoints missing from store: " + err.Error())
			}
		}
	}

	g.frontier = newFrontier
	return nil
}

// sinkTime is a timestamp no real row can ever carry (Append rejects
// infinities), guaranteeing the sink's GraphState never collides with a
// real node regardless of its placeholder State.
func sinkTime() ordtime.Time {
	return ordtime.New(float32(math.Inf(1)))
}

// ComputePath links every frontier node to a temporary sink with a
// zero-weight edge, runs a shortest-path search from the start node to that
// sink, and projects the resulting path to its per-row Final placements
// (dropping the synthetic start and sink endpoints).
//
// Returns an empty, nil-error sequence if no path exists (only possible if
// some appended row had no legal placement, leaving the frontier empty).
// If Append was never called the path is just start -> sink, so the result
// is likewise empty. The sink node is removed before returning, so the graph
// remains reusable for a subsequent ComputePath call.
func (g *StepGraph) ComputePath() ([]foot.Placement, error) {
	sinkState := transition.NewState(g.stage.Columns())
	sinkID := g.store.EnsureNode(sinkTime(), sinkState)
	defer func() { _ = g.store.RemoveNode(sinkID) }()

	for _, u := range g.frontier {
		if _, err := g.store.EnsureEdge(u, sinkID, 0); err != nil {
			panic("stepgraph: frontier node missing from store: " + err.Error())
		}
	}

	result, err := shortestpath.Run(g.store, g.startID, sinkID)
	if errors.Is(err, shortestpath.ErrUnreachable) {
		return []foot.Placement{}, nil
	}
	if err != nil {
		return nil, err
	}

	out := make([]foot.Placement, 0, len(result.Path))
	for _, id := range result.Path {
		if id == g.startID || id == sinkID {
			continue
		}
		n, err := g.store.Node(id)
		if err != nil {
			panic("stepgraph: path node missing from store: " + err.Error())
		}
		out = append(out, n.State.Final)
	}
	return out, nil
}
