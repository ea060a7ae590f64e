// See weights.go for the tuning constants and total.go for the aggregate
// entry point; each penalty term has its own file (movement.go, facing.go,
// doublestep.go, mine.go, twisted.go, slowbracket.go, jack.go,
// footswitch.go).
package cost
