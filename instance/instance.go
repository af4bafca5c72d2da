package instance

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/axisep/pointset"
)

// DefaultMaxPoints is the per-instance capacity ceiling: the engine's
// O(n⁴) worst case stays comfortable at this size.
const DefaultMaxPoints = 100

// Sentinel errors for instance-file reading.
var (
	// ErrNoPoints indicates the file carries no point count at all.
	ErrNoPoints = errors.New("instance: file declares no points")
	// ErrCountMismatch indicates the declared count does not match the
	// coordinate pairs actually present.
	ErrCountMismatch = errors.New("instance: declared count does not match point records")
	// ErrTooManyPoints indicates the declared count exceeds the capacity ceiling.
	ErrTooManyPoints = errors.New("instance: point count exceeds capacity")
)

// Options contains tunable parameters for instance reading.
type Options struct {
	// MaxPoints caps how many points one instance may declare.
	MaxPoints int
}

// DefaultOptions returns Options with MaxPoints=DefaultMaxPoints.
func DefaultOptions() Options {
	return Options{MaxPoints: DefaultMaxPoints}
}

// Read parses one instance file into a pointset.Set.
//
// The first token is the declared point count; every following "x y"
// token pair is one point, in file order (ascending by X per the input
// contract). Returns ErrNoPoints for a file without a count,
// ErrTooManyPoints when the declared count exceeds opts.MaxPoints, and
// ErrCountMismatch when the declared and realized counts disagree or a
// token fails to parse. A missing file surfaces the fs error unchanged,
// so callers can distinguish "no such instance" with os.IsNotExist.
func Read(path string, opts Options) (*pointset.Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rd := bufio.NewReader(f)
	var declared int
	if _, err = fmt.Fscan(rd, &declared); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNoPoints, path)
	}
	if declared < 0 {
		return nil, fmt.Errorf("%w: %s declares %d", ErrCountMismatch, path, declared)
	}
	if declared > opts.MaxPoints {
		return nil, fmt.Errorf("%w: %s declares %d, capacity %d",
			ErrTooManyPoints, path, declared, opts.MaxPoints)
	}

	pts := make([]pointset.Point, 0, declared)
	for {
		var x, y float64
		_, err = fmt.Fscan(rd, &x, &y)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrCountMismatch, path, err)
		}
		if len(pts) == opts.MaxPoints {
			return nil, fmt.Errorf("%w: %s holds more than %d points",
				ErrTooManyPoints, path, opts.MaxPoints)
		}
		pts = append(pts, pointset.Point{X: x, Y: y})
	}
	if len(pts) != declared {
		return nil, fmt.Errorf("%w: %s declares %d, found %d",
			ErrCountMismatch, path, declared, len(pts))
	}

	return pointset.New(pts), nil
}
