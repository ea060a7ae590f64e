// Package cost implements the eight weighted biomechanical penalty terms
// scored against every candidate Step Graph edge, and their aggregate.
package cost

// Weight constants, exact per the tuning in use. These are never mutated
// at runtime — learning the weights from data is explicitly out of scope.
const (
	MOVEMENT        = 6.0
	FACING          = 200.0
	DOUBLESTEP      = 850.0
	MINE            = 10000.0
	TWISTED         = 100.0
	SLOW_BRACKET    = 300.0
	JACK            = 30.0
	SLOW_FOOTSWITCH = 325.0
	SIDESWITCH      = 130.0
)

// Threshold constants, in seconds.
const (
	SLOW_BRACKET_T    = 0.15
	JACK_T            = 0.1
	SLOW_FOOTSWITCH_T = 0.2
)
