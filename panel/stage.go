package panel

import (
	"errors"
	"math"
)

// ErrNoColumns indicates NewStage was called with zero panel positions.
var ErrNoColumns = errors.New("panel: stage must have at least one column")

// bracketReach is the maximum center-to-center distance at which one foot
// can bracket two columns (heel on one, toe on the other).
const bracketReach = 2.0

// Stage is an immutable panel geometry: an indexed list of panel positions
// plus precomputed pairwise distance/cos/sin/x-diff/y-diff caches.
//
// Safe for concurrent reads from multiple goroutines once constructed —
// nothing here mutates after NewStage/DefaultStage returns.
type Stage struct {
	positions []Position

	distance    *grid
	cosGrid     *grid
	sinGrid     *grid
	xDifference *grid
	yDifference *grid
}

// DefaultStage returns the "DDR solo 4-panel" geometry: columns at
// (-1,0), (0,-1), (0,1), (1,0).
func DefaultStage() *Stage {
	s, err := NewStage(
		Position{X: -1, Y: 0},
		Position{X: 0, Y: -1},
		Position{X: 0, Y: 1},
		Position{X: 1, Y: 0},
	)
	if err != nil {
		// DefaultStage's literal positions are always finite; this would
		// only fire if the constant above were edited to something non-finite.
		panic(err)
	}
	return s
}

// NewStage builds an arbitrary stage geometry from caller-declared panel
// positions (spec Non-goal: topologies beyond those the caller declares are
// out of scope — this constructor does not infer one).
//
// Returns ErrNoColumns for zero positions, or ErrNonFinitePosition for any
// NaN/Inf coordinate. Both are fatal, programmer-visible validation errors.
func NewStage(positions ...Position) (*Stage, error) {
	if len(positions) == 0 {
		return nil, ErrNoColumns
	}
	for _, p := range positions {
		if err := p.validate(); err != nil {
			return nil, err
		}
	}

	n := len(positions)
	s := &Stage{
		positions:   append([]Position(nil), positions...),
		distance:    newGrid(n),
		cosGrid:     newGrid(n),
		sinGrid:     newGrid(n),
		xDifference: newGrid(n),
		yDifference: newGrid(n),
	}
	s.precompute()
	return s, nil
}

// Columns returns the stage's panel count.
func (s *Stage) Columns() int {
	return len(s.positions)
}

// Position returns the position of column c.
func (s *Stage) Position(c int) Position {
	return s.positions[c]
}

// precompute fills every pairwise cache once, at construction.
func (s *Stage) precompute() {
	n := len(s.positions)
	for l := 0; l < n; l++ {
		for r := 0; r < n; r++ {
			a, b := s.positions[l], s.positions[r]
			d := euclidean(a, b)
			s.distance.set(l, r, d)
			if l == r {
				// cos/sin of a zero vector are conventionally 0 here; the
				// formulas below special-case l==r to 0 directly anyway.
				continue
			}
			dx, dy := b.X-a.X, b.Y-a.Y
			s.cosGrid.set(l, r, dx/d)
			s.sinGrid.set(l, r, dy/d)
		}
	}
	for l := 0; l < n; l++ {
		for r := 0; r < n; r++ {
			s.xDifference.set(l, r, computeXDifference(s, l, r))
			s.yDifference.set(l, r, computeYDifference(s, l, r))
		}
	}
}

func euclidean(a, b Position) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Distance returns the Euclidean distance between columns l and r.
func (s *Stage) Distance(l, r int) float64 {
	return s.distance.at(l, r)
}

// Cos returns the x-component of the unit vector from column l to r.
func (s *Stage) Cos(l, r int) float64 {
	if l == r {
		return 0
	}
	return s.cosGrid.at(l, r)
}

// Sin returns the y-component of the unit vector from column l to r.
func (s *Stage) Sin(l, r int) float64 {
	if l == r {
		return 0
	}
	return s.sinGrid.at(l, r)
}

func computeXDifference(s *Stage, l, r int) float64 {
	if l == r {
		return 0
	}
	a, b := s.positions[l], s.positions[r]
	if b.X == a.X {
		return 0
	}
	c := s.Cos(l, r)
	v := c * c * c * c
	if b.X < a.X {
		v = -v
	}
	return v
}

func computeYDifference(s *Stage, l, r int) float64 {
	if l == r {
		return 0
	}
	a, b := s.positions[l], s.positions[r]
	if b.Y == a.Y {
		return 0
	}
	sn := s.Sin(l, r)
	v := sn * sn * sn * sn
	if b.Y < a.Y {
		v = -v
	}
	return v
}

// XDifference returns sign(x_r - x_l) * cos(l,r)^4, or 0 when l == r or the
// columns share an x coordinate. The fourth power emphasises near-axis
// misalignment while compressing already-correct orientations.
func (s *Stage) XDifference(l, r int) float64 {
	return s.xDifference.at(l, r)
}

// YDifference returns sign(y_r - y_l) * sin(l,r)^4, or 0 when l == r or the
// columns share a y coordinate.
func (s *Stage) YDifference(l, r int) float64 {
	return s.yDifference.at(l, r)
}

// IsValidBracket reports whether one foot can bracket columns a and b
// (heel on one, toe on the other): distance(a,b) < 2.0.
func (s *Stage) IsValidBracket(a, b int) bool {
	return s.Distance(a, b) < bracketReach
}

// IsSidePanel reports whether column c lies on the stage's left/right edge:
// y == 0 and |x| >= 1.
func (s *Stage) IsSidePanel(c int) bool {
	p := s.positions[c]
	return p.Y == 0 && math.Abs(p.X) >= 1
}

// AveragePosition returns the midpoint of columns a and b.
func (s *Stage) AveragePosition(a, b int) Position {
	return Average(s.positions[a], s.positions[b])
}
