// Package chart defines the narrow boundary between the annotator and its
// chart-parser collaborator (out of scope per the system specification):
// the KeyType taxonomy, per-column Note, and the Row the parser hands the
// Step Graph one at a time.
package chart

// KeyType classifies a single note in a Row.
type KeyType int

const (
	// Empty marks a column with nothing to press or release this row.
	Empty KeyType = iota
	// Normal is an ordinary tap: requires a foot press.
	Normal
	// Mine must not be stepped on; it requires a release (no foot resting
	// there), not a press.
	Mine
	// SliderStart begins a held note and requires a foot press.
	SliderStart
	// SliderEnd closes a held note.
	SliderEnd
)

// Note describes one column's content for a single Row.
type Note struct {
	Key KeyType
}

// RequiresPress reports whether this note needs a foot pressed down this
// row: Normal and SliderStart do, everything else does not.
func (n Note) RequiresPress() bool {
	return n.Key == Normal || n.Key == SliderStart
}

// RequiresRelease reports whether a foot resting on this column is
// penalized: only Mine does.
func (n Note) RequiresRelease() bool {
	return n.Key == Mine
}

// Row is one timestamped horizontal slice of the chart: one Note per panel.
type Row []Note

// NewRow returns a Row of the given length, every column Empty.
func NewRow(columns int) Row {
	return make(Row, columns)
}
