// Package ordtime wraps a float32 timestamp in a total-order, NaN-free type.
//
// Graph states are keyed on (time, foot state) pairs (see package
// graphstore). A bare float32 cannot serve as a map-key component because
// NaN breaks equality (NaN != NaN), so every timestamp that reaches the
// graph store passes through this package first.
package ordtime

import (
	"errors"
	"math"
)

// ErrNonFiniteTime indicates a NaN timestamp was supplied. Infinities are
// allowed: NegInf backs the Step Graph's synthetic start node.
var ErrNonFiniteTime = errors.New("ordtime: time must not be NaN")

// Time is a comparable, totally-ordered timestamp in seconds.
// The zero value is 0s, not "unset" — callers that need "unset" should use
// a separate bool or a pointer.
type Time struct {
	seconds float32
}

// New wraps seconds as a Time. It panics on NaN: a non-finite time is a
// programmer error per the core contract, not a recoverable condition.
func New(seconds float32) Time {
	if math.IsNaN(float64(seconds)) {
		panic(ErrNonFiniteTime.Error())
	}
	return Time{seconds: seconds}
}

// NegInf returns the time used by the synthetic start node: a value before
// every real row timestamp.
func NegInf() Time {
	return Time{seconds: float32(math.Inf(-1))}
}

// Seconds returns the wrapped value.
func (t Time) Seconds() float32 {
	return t.seconds
}

// Sub returns t - u in seconds, as a float64 (the precision the cost model
// computes in).
func (t Time) Sub(u Time) float64 {
	return float64(t.seconds) - float64(u.seconds)
}

// Less reports whether t sorts strictly before u.
func (t Time) Less(u Time) bool {
	return t.seconds < u.seconds
}

// Time is comparable by Go's built-in ==; no further methods are needed for
// map-key or equality use. Two Time values compare equal iff their wrapped
// float32 bits compare equal under ==, which holds for all finite values
// and for the two infinities, and never holds for NaN (which New rejects).
