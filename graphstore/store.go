package graphstore

import (
	"sort"

	"github.com/footfall/stepgraph/ordtime"
	"github.com/footfall/stepgraph/transition"
)

// EnsureNode returns the ID of the node at (t, state), creating it if the
// store has not seen this exact (time, state) pair before.
//
// Complexity: O(1) amortized. Concurrency: write lock on muNode.
func (s *Store) EnsureNode(t ordtime.Time, state transition.State) string {
	key := stateKey(t, state)

	s.muNode.Lock()
	defer s.muNode.Unlock()

	if id, ok := s.nodeByKey[key]; ok {
		return id
	}

	id := s.nextNodeIDLocked()
	s.nodes[id] = Node{ID: id, Time: t, State: state}
	s.nodeByKey[key] = id
	return id
}

// Node returns the node with the given ID, or ErrNodeNotFound.
func (s *Store) Node(id string) (Node, error) {
	s.muNode.RLock()
	defer s.muNode.RUnlock()

	n, ok := s.nodes[id]
	if !ok {
		return Node{}, ErrNodeNotFound
	}
	return n, nil
}

// Nodes returns every node, sorted by ID ascending (a stable textual sort,
// not numeric — fine for the diagnostic/test use this method serves).
func (s *Store) Nodes() []Node {
	s.muNode.RLock()
	defer s.muNode.RUnlock()

	out := make([]Node, 0, len(s.nodes))
	for _, n := range s.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// NodeCount returns the number of distinct nodes the store holds.
func (s *Store) NodeCount() int {
	s.muNode.RLock()
	defer s.muNode.RUnlock()
	return len(s.nodes)
}

// EnsureEdge returns the ID of the edge (from, to, weight), creating it if
// the store has not seen this exact triple before. Both endpoints must
// already exist as nodes, or this returns ErrNodeNotFound.
//
// Complexity: O(1) amortized. Concurrency: write lock on muEdge; endpoint
// existence is checked against muNode's catalog via hasNode.
func (s *Store) EnsureEdge(from, to string, weight float64) (string, error) {
	if !s.hasNode(from) {
		return "", ErrNodeNotFound
	}
	if !s.hasNode(to) {
		return "", ErrNodeNotFound
	}

	key := edgeKey(from, to, weight)

	s.muEdge.Lock()
	defer s.muEdge.Unlock()

	if id, ok := s.edgeByKey[key]; ok {
		return id, nil
	}

	id := s.nextEdgeIDLocked()
	s.edges[id] = Edge{ID: id, From: from, To: to, Weight: weight}
	s.edgeByKey[key] = id
	s.adjacency[from] = append(s.adjacency[from], id)
	return id, nil
}

func (s *Store) hasNode(id string) bool {
	s.muNode.RLock()
	defer s.muNode.RUnlock()
	_, ok := s.nodes[id]
	return ok
}

// Edge returns the edge with the given ID, or ErrEdgeNotFound.
func (s *Store) Edge(id string) (Edge, error) {
	s.muEdge.RLock()
	defer s.muEdge.RUnlock()

	e, ok := s.edges[id]
	if !ok {
		return Edge{}, ErrEdgeNotFound
	}
	return e, nil
}

// Edges returns every edge, sorted by ID ascending.
func (s *Store) Edges() []Edge {
	s.muEdge.RLock()
	defer s.muEdge.RUnlock()

	out := make([]Edge, 0, len(s.edges))
	for _, e := range s.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// EdgeCount returns the number of distinct edges the store holds.
func (s *Store) EdgeCount() int {
	s.muEdge.RLock()
	defer s.muEdge.RUnlock()
	return len(s.edges)
}

// EdgesFrom returns every edge whose From equals id, in insertion order.
// Used by the shortest-path search to expand a node's outgoing edges.
func (s *Store) EdgesFrom(id string) []Edge {
	s.muEdge.RLock()
	defer s.muEdge.RUnlock()

	ids := s.adjacency[id]
	out := make([]Edge, 0, len(ids))
	for _, eid := range ids {
		out = append(out, s.edges[eid])
	}
	return out
}

// RemoveNode deletes a node and every edge incident to it (outgoing or
// incoming), leaving the store consistent for reuse. Used by the Step
// Graph to tear down its temporary sink node after path extraction.
//
// Returns ErrNodeNotFound if id does not exist.
func (s *Store) RemoveNode(id string) error {
	s.muNode.Lock()
	defer s.muNode.Unlock()
	s.muEdge.Lock()
	defer s.muEdge.Unlock()

	n, ok := s.nodes[id]
	if !ok {
		return ErrNodeNotFound
	}

	for eid, e := range s.edges {
		if e.From == id || e.To == id {
			delete(s.edges, eid)
			delete(s.edgeByKey, edgeKey(e.From, e.To, e.Weight))
		}
	}
	delete(s.adjacency, id)
	for from, ids := range s.adjacency {
		kept := ids[:0]
		for _, eid := range ids {
			if _, ok := s.edges[eid]; ok {
				kept = append(kept, eid)
			}
		}
		s.adjacency[from] = kept
	}

	delete(s.nodes, id)
	delete(s.nodeByKey, stateKey(n.Time, n.State))
	return nil
}
