// Package canvas holds the types the plotting canvas accepts from the
// command line.
package canvas

// Mode selects how the canvas draws points.
type Mode int

const (
	// Dot draws one mark per occupied cell. It is the default.
	Dot Mode = iota
	// Count shades each cell by the number of points that land in it.
	Count
)

// String returns the command-line spelling of the mode.
func (m Mode) String() string {
	switch m {
	case Dot:
		return "dot"
	case Count:
		return "count"
	default:
		return "unknown"
	}
}
