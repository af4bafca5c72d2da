package separate

import "github.com/katalvlaran/axisep/pointset"

// pool is the candidate line pool: a fixed slice in enumeration order
// plus a consumed flag per entry. The enumeration order is load-bearing —
// the greedy tie-break keeps the first-enumerated candidate among equal
// scores — so consumption flips a flag instead of disturbing the slice.
type pool struct {
	lines    []Line
	consumed []bool
}

// newPool generates the candidates once, before the loop starts: for
// every consecutive pair in the X order a vertical line at the midpoint
// of the two X coordinates, then the same along the Y order. 2·(n−1)
// candidates for n ≥ 2 points, none otherwise.
//
// Complexity: O(n) time and memory.
func newPool(set *pointset.Set) *pool {
	n := set.Len()
	p := &pool{}
	if n < 2 {
		return p
	}
	p.lines = make([]Line, 0, 2*(n-1))
	byX, byY := set.ByX(), set.ByY()
	for i := 0; i < n-1; i++ {
		mid := (set.At(byX[i]).X + set.At(byX[i+1]).X) / 2
		p.lines = append(p.lines, Line{Axis: Vertical, Coord: mid})
	}
	for i := 0; i < n-1; i++ {
		mid := (set.At(byY[i]).Y + set.At(byY[i+1]).Y) / 2
		p.lines = append(p.lines, Line{Axis: Horizontal, Coord: mid})
	}
	p.consumed = make([]bool, len(p.lines))

	return p
}

// consume retires the candidate at idx permanently. It is never rescored
// or re-enumerated; there is no way back to the live state.
func (p *pool) consume(idx int) {
	p.consumed[idx] = true
}
