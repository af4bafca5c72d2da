package separate

import (
	"fmt"

	"github.com/katalvlaran/axisep/linkgraph"
	"github.com/katalvlaran/axisep/pointset"
)

// run bundles the working state of a single instance: the point orders,
// the connectivity graph and the candidate pool. Built fresh inside
// every Separate call and discarded with it, so no state can leak
// between instances.
type run struct {
	set   *pointset.Set
	graph *linkgraph.Graph
	pool  *pool
}

// axisOrder returns the sorted index order matching the line's axis:
// the X order for vertical lines, the Y order for horizontal ones.
func (r *run) axisOrder(ln Line) []int {
	if ln.Axis == Vertical {
		return r.set.ByX()
	}

	return r.set.ByY()
}

// coord returns the point's coordinate on the line's axis.
func (r *run) coord(ln Line, idx int) float64 {
	p := r.set.At(idx)
	if ln.Axis == Vertical {
		return p.X
	}

	return p.Y
}

// splitIndex returns the position, within the line's axis order, of the
// last point on the low side of ln: the scan stops at the first
// coordinate strictly greater than ln.Coord and backs up one position.
// Returns -1 when the first point already exceeds the line, and -1 as
// well when the scan falls through with nothing exceeding it; both
// degenerate splits leave one side empty and score zero.
//
// The strict comparison is deliberate: with duplicate coordinates on the
// split axis, a line coincident with a run of equal points puts that
// whole run on the low side. Recomputed per call — O(n) is cheap next to
// the O(n²) scoring it feeds.
func (r *run) splitIndex(ln Line) int {
	order := r.axisOrder(ln)
	for i, idx := range order {
		if r.coord(ln, idx) > ln.Coord {
			return i - 1
		}
	}

	return -1
}

// score counts the active links ln would cut: pairs with one endpoint at
// an order position ≤ the split and the other above it.
//
// Complexity: O(n²) per call.
func (r *run) score(ln Line) int {
	order := r.axisOrder(ln)
	split := r.splitIndex(ln)
	links := 0
	for i := 0; i <= split; i++ {
		for j := split + 1; j < len(order); j++ {
			if r.graph.IsLinked(order[i], order[j]) {
				links++
			}
		}
	}

	return links
}

// commit removes every active link ln cuts: the same low×high traversal
// as score, with Unlink in place of counting.
func (r *run) commit(ln Line) {
	order := r.axisOrder(ln)
	split := r.splitIndex(ln)
	for i := 0; i <= split; i++ {
		for j := split + 1; j < len(order); j++ {
			r.graph.Unlink(order[i], order[j])
		}
	}
}

// Separate computes an ordered list of axis-parallel lines that fully
// separates the points in set: after the returned lines are applied, no
// two points share a region. Lines appear in commit order; running twice
// on the same Set yields identical slices.
//
// n ≤ 1 returns an empty solution without entering the loop. Otherwise
// the loop commits the live candidate with the strictly greatest cut
// score (first-enumerated wins ties) until no links remain — at most
// 2·(n−1) commits, each strictly decreasing the active-link count.
//
// Errors: linkgraph.ErrConstruct (wrapped) if the connectivity graph
// fails its construction recount; ErrPoolExhausted if no positive-scoring
// candidate exists while links remain. Both abort the instance without a
// partial solution.
func Separate(set *pointset.Set) ([]Line, error) {
	n := set.Len()
	if n <= 1 {
		return nil, nil
	}

	g, err := linkgraph.New(n)
	if err != nil {
		return nil, fmt.Errorf("separate: %w", err)
	}
	r := &run{set: set, graph: g, pool: newPool(set)}

	solution := make([]Line, 0, len(r.pool.lines))
	for r.graph.ActiveCount() > 0 {
		best, bestScore := -1, 0
		for idx := range r.pool.lines {
			if r.pool.consumed[idx] {
				continue
			}
			// Strictly greater only: an equal later score must not
			// displace the first-enumerated incumbent.
			if s := r.score(r.pool.lines[idx]); s > bestScore {
				best, bestScore = idx, s
			}
		}
		if best < 0 {
			return nil, ErrPoolExhausted
		}
		ln := r.pool.lines[best]
		r.commit(ln)
		solution = append(solution, ln)
		r.pool.consume(best)
	}

	return solution, nil
}
