package linkgraph

import "errors"

// ErrConstruct indicates the complete graph could not be realized: n was
// negative or the directed-entry recount disagreed with n·(n−1).
var ErrConstruct = errors.New("linkgraph: complete graph construction mismatch")

const wordBits = 64

// Graph is the pairwise-connectivity relation over n point indices.
// Row i holds a bitset of the indices i is still linked to; the relation
// is kept symmetric by Unlink. active counts directed entries, so a
// single unordered link contributes 2.
type Graph struct {
	n      int
	rows   [][]uint64
	active int
}

// New builds the complete symmetric graph over n elements (0 ≤ i,j < n,
// i ≠ j all linked). The directed-entry count is recounted during
// construction and checked against n·(n−1); a mismatch returns
// ErrConstruct rather than a silently inconsistent graph.
//
// Complexity: O(n²) time, O(n²/64) memory.
func New(n int) (*Graph, error) {
	if n < 0 {
		return nil, ErrConstruct
	}
	words := (n + wordBits - 1) / wordBits
	g := &Graph{n: n, rows: make([][]uint64, n)}
	for i := 0; i < n; i++ {
		g.rows[i] = make([]uint64, words)
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			g.rows[i][j/wordBits] |= 1 << uint(j%wordBits)
			g.active++
		}
	}
	if g.active != n*(n-1) {
		return nil, ErrConstruct
	}

	return g, nil
}

// Order returns n, the number of points the relation spans.
func (g *Graph) Order() int { return g.n }

// ActiveCount returns the number of active directed link entries.
// 0 means the point set is fully separated.
func (g *Graph) ActiveCount() int { return g.active }

// IsLinked reports whether i and j are still linked. Indices must lie in
// [0, Order()). Complexity: O(1).
func (g *Graph) IsLinked(i, j int) bool {
	return g.rows[i][j/wordBits]&(1<<uint(j%wordBits)) != 0
}

// Unlink removes the link between i and j in both directions and
// decrements the active count by 2. Idempotent: unlinking an already
// removed pair (or i == j, never linked) is a no-op. Complexity: O(1).
func (g *Graph) Unlink(i, j int) {
	mask := uint64(1) << uint(j%wordBits)
	if g.rows[i][j/wordBits]&mask == 0 {
		return
	}
	g.rows[i][j/wordBits] &^= mask
	g.rows[j][i/wordBits] &^= 1 << uint(i%wordBits)
	g.active -= 2
}
