package graphstore

import (
	"math"
	"strconv"

	"github.com/footfall/stepgraph/ordtime"
	"github.com/footfall/stepgraph/transition"
)

// stateKey canonicalizes a (time, state) pair into a dedup key. It keys on
// the time's exact bit pattern rather than a rounded textual form, per the
// store's "do not round" edge-weight policy applied uniformly to every
// float key this package builds.
func stateKey(t ordtime.Time, s transition.State) string {
	bits := math.Float32bits(t.Seconds())
	var buf []byte
	buf = strconv.AppendUint(buf, uint64(bits), 16)
	buf = append(buf, '|')
	buf = append(buf, s.Activated.String()...)
	buf = append(buf, '|')
	buf = append(buf, s.Final.String()...)
	return string(buf)
}

// edgeKey canonicalizes a (from, to, weight) triple into a dedup key, using
// weight's exact float64 bit pattern so two edges are merged only when their
// weights are bit-identical.
func edgeKey(from, to string, weight float64) string {
	bits := math.Float64bits(weight)
	var buf []byte
	buf = append(buf, from...)
	buf = append(buf, '|')
	buf = append(buf, to...)
	buf = append(buf, '|')
	buf = strconv.AppendUint(buf, bits, 16)
	return string(buf)
}

const nodeIDPrefix = 'n'
const edgeIDPrefix = 'e'

// nextNodeIDLocked returns the next monotonic textual node ID ("n1", "n2", ...).
// Caller must hold muNode for writing.
func (s *Store) nextNodeIDLocked() string {
	s.nextNodeID++
	buf := make([]byte, 0, 1+20)
	buf = append(buf, nodeIDPrefix)
	buf = strconv.AppendUint(buf, s.nextNodeID, 10)
	return string(buf)
}

// nextEdgeIDLocked returns the next monotonic textual edge ID ("e1", "e2", ...).
// Caller must hold muEdge for writing.
func (s *Store) nextEdgeIDLocked() string {
	s.nextEdgeID++
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, s.nextEdgeID, 10)
	return string(buf)
}
