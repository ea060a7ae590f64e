// Package shortestpath computes the minimum-cost path between two nodes of
// a graphstore.Store using Dijkstra's algorithm over float64 edge weights.
//
// The search targets a single sink rather than computing distances to every
// vertex: the Step Graph only ever wants the best path to whichever node
// represents "fully placed, last row processed", so Run stops as soon as the
// sink is finalized instead of draining the whole heap.
//
// Complexity:
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Notes on implementation choices:
//   - A pre-scan of every edge fails fast on a negative weight, mirroring
//     the upfront validation style of a weighted-graph shortest-path run.
//   - Ties in accumulated distance are broken by insertion order: each heap
//     entry carries a monotonic sequence number, and the heap orders first
//     by distance, then by sequence. Without this, Go's heap is free to pop
//     equal-distance entries in whichever order sift happens to produce,
//     which makes the chosen path nondeterministic across runs.
package shortestpath

import (
	"container/heap"
	"fmt"

	"github.com/footfall/stepgraph/graphstore"
)

// Result is the outcome of a successful Run: the node-ID path from source to
// sink inclusive, and its total accumulated weight.
type Result struct {
	Path   []string
	Weight float64
}

// Run computes the minimum-cost path from source to sink in store.
//
// Preconditions and validation (in order):
//  1. store must be non-nil (ErrNilStore).
//  2. source must be non-empty (ErrEmptySource).
//  3. sink must be non-empty (ErrEmptySink).
//  4. source must exist in store (ErrSourceNotFound).
//  5. No edge in store can have negative weight (ErrNegativeWeight).
//
// Returns ErrUnreachable if sink is not reachable from source.
func Run(store *graphstore.Store, source, sink string) (Result, error) {
	if store == nil {
		return Result{}, ErrNilStore
	}
	if source == "" {
		return Result{}, ErrEmptySource
	}
	if sink == "" {
		return Result{}, ErrEmptySink
	}
	if _, err := store.Node(source); err != nil {
		return Result{}, ErrSourceNotFound
	}

	for _, e := range store.Edges() {
		if e.Weight < 0 {
			return Result{}, fmt.Errorf("%w: edge %s->%s weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	r := &runner{
		store:   store,
		dist:    map[string]float64{source: 0},
		prev:    make(map[string]string),
		visited: make(map[string]bool),
	}
	heap.Init(&r.pq)
	heap.Push(&r.pq, &queueItem{id: source, dist: 0, seq: r.nextSeq()})

	found := r.process(sink)
	if !found {
		return Result{}, ErrUnreachable
	}

	return Result{Path: r.reconstructPath(source, sink), Weight: r.dist[sink]}, nil
}

// runner holds the mutable state for a single Run execution.
type runner struct {
	store   *graphstore.Store
	dist    map[string]float64
	prev    map[string]string
	visited map[string]bool
	pq      priorityQueue
	seq     uint64
}

func (r *runner) nextSeq() uint64 {
	r.seq++
	return r.seq
}

// process repeatedly extracts the minimum-distance node and relaxes its
// outgoing edges, stopping as soon as sink is finalized. Returns false if
// the heap drains before sink is reached.
func (r *runner) process(sink string) bool {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*queueItem)
		u := item.id

		if r.visited[u] {
			continue
		}
		r.visited[u] = true

		if u == sink {
			return true
		}

		for _, e := range r.store.EdgesFrom(u) {
			v := e.To
			newDist := r.dist[u] + e.Weight
			if existing, ok := r.dist[v]; ok && newDist >= existing {
				continue
			}
			r.dist[v] = newDist
			r.prev[v] = u
			heap.Push(&r.pq, &queueItem{id: v, dist: newDist, seq: r.nextSeq()})
		}
	}
	return false
}

func (r *runner) reconstructPath(source, sink string) []string {
	var reversed []string
	for at := sink; ; {
		reversed = append(reversed, at)
		if at == source {
			break
		}
		at = r.prev[at]
	}

	path := make([]string, len(reversed))
	for i, id := range reversed {
		path[len(reversed)-1-i] = id
	}
	return path
}

// queueItem is a (node, distance) pair ordered in the heap by distance, then
// by insertion sequence to guarantee deterministic tie-breaking.
type queueItem struct {
	id   string
	dist float64
	seq  uint64
}

// priorityQueue is a min-heap of *queueItem using the lazy-decrease-key
// pattern: a shorter distance to an already-queued node is pushed as a new
// entry rather than mutating the old one; stale entries are skipped in
// process via the visited set.
type priorityQueue []*queueItem

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

func (pq priorityQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *priorityQueue) Push(x interface{}) { *pq = append(*pq, x.(*queueItem)) }

func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
