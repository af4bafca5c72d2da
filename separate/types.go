// Package separate defines the Line type and sentinel errors for the
// greedy separation engine.
package separate

import (
	"errors"
	"fmt"
)

// ErrPoolExhausted indicates the greedy loop found no positive-scoring
// live candidate while active links remain. A precondition was violated
// upstream (the candidate pool no longer covers the point set); the
// instance is aborted rather than finished with points still connected.
var ErrPoolExhausted = errors.New("separate: candidate pool exhausted with links remaining")

// Axis tags the orientation of a separating line.
type Axis int

const (
	// Vertical lines cut by X coordinate; rendered "v" in solution files.
	Vertical Axis = iota
	// Horizontal lines cut by Y coordinate; rendered "h" in solution files.
	Horizontal
)

// String returns the single-letter tag used in solution files.
func (a Axis) String() string {
	if a == Vertical {
		return "v"
	}

	return "h"
}

// Line is one axis-parallel separating line: an axis tag plus the
// coordinate the line sits at on that axis.
type Line struct {
	Axis  Axis
	Coord float64
}

// String renders the line in the solution-file vocabulary: the axis
// letter and the coordinate to one decimal place, e.g. "v 1.0".
func (l Line) String() string {
	return fmt.Sprintf("%s %.1f", l.Axis, l.Coord)
}
