package shortestpath

import "errors"

// Sentinel errors returned by Run.
var (
	// ErrEmptySource indicates an empty source node ID was supplied.
	ErrEmptySource = errors.New("shortestpath: source node ID is empty")

	// ErrEmptySink indicates an empty sink node ID was supplied.
	ErrEmptySink = errors.New("shortestpath: sink node ID is empty")

	// ErrNilStore indicates a nil *graphstore.Store was passed to Run.
	ErrNilStore = errors.New("shortestpath: store is nil")

	// ErrSourceNotFound indicates the source node does not exist in the store.
	ErrSourceNotFound = errors.New("shortestpath: source node not found")

	// ErrNegativeWeight indicates a negative edge weight was encountered; the
	// cost model guarantees every edge weight is non-negative, so this
	// signals a cost-model or store bug rather than a normal runtime
	// condition.
	ErrNegativeWeight = errors.New("shortestpath: negative edge weight encountered")

	// ErrUnreachable indicates the sink is not reachable from the source.
	ErrUnreachable = errors.New("shortestpath: sink is unreachable from source")
)
