// Package panel implements Stage Geometry: panel positions, pairwise
// distance/cos/sin/x-y-difference caches, bracket-reach and side-panel
// predicates.
//
// A Stage is immutable once constructed; all derived quantities are
// precomputed so that the cost model's per-edge geometry lookups are O(1)
// instead of recomputing trigonometry on every candidate edge.
package panel
