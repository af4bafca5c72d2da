package separate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/axisep/linkgraph"
	"github.com/katalvlaran/axisep/pointset"
)

// newRun builds the per-instance state the split/score helpers operate on.
func newRun(t *testing.T, pts []pointset.Point) *run {
	t.Helper()
	set := pointset.New(pts)
	g, err := linkgraph.New(set.Len())
	require.NoError(t, err)

	return &run{set: set, graph: g, pool: newPool(set)}
}

// TestSplitIndex pins down the scan semantics: first strictly greater
// coordinate, then back up one; -1 when the first point already exceeds
// the line and -1 again when nothing does (fall-through).
func TestSplitIndex(t *testing.T) {
	r := newRun(t, []pointset.Point{{X: 0, Y: 0}, {X: 2, Y: 1}, {X: 4, Y: 2}})

	cases := []struct {
		name string
		line Line
		want int
	}{
		{"BelowAll", Line{Vertical, -1.0}, -1},
		{"BetweenFirstPair", Line{Vertical, 1.0}, 0},
		{"BetweenSecondPair", Line{Vertical, 3.0}, 1},
		{"AboveAll", Line{Vertical, 9.0}, -1},
		{"OnMiddlePoint", Line{Vertical, 2.0}, 1},
		{"HorizontalBetween", Line{Horizontal, 0.5}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, r.splitIndex(tc.line))
		})
	}
}

// TestSplitIndex_DuplicateCoords verifies a line coincident with a run of
// equal coordinates keeps the whole run on the low side (strict >).
func TestSplitIndex_DuplicateCoords(t *testing.T) {
	r := newRun(t, []pointset.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 4, Y: 4}})

	// Both y=0 points sit on (not above) the line y=0.
	assert.Equal(t, 1, r.splitIndex(Line{Horizontal, 0.0}))
}

// TestScore verifies cut counting against the live graph, before and
// after links are removed.
func TestScore(t *testing.T) {
	r := newRun(t, []pointset.Point{{X: 0, Y: 0}, {X: 2, Y: 1}, {X: 4, Y: 2}})

	// x=1.0 splits {0} from {1,2}: two active links cross it.
	assert.Equal(t, 2, r.score(Line{Vertical, 1.0}))
	// A line outside the point range cuts nothing.
	assert.Equal(t, 0, r.score(Line{Vertical, 9.0}))

	r.graph.Unlink(0, 1)
	assert.Equal(t, 1, r.score(Line{Vertical, 1.0}))

	// commit removes the remaining crossing link but not the 1-2 link.
	r.commit(Line{Vertical, 1.0})
	assert.Equal(t, 0, r.score(Line{Vertical, 1.0}))
	assert.True(t, r.graph.IsLinked(1, 2))
	assert.Equal(t, 2, r.graph.ActiveCount())
}

// TestNewPool_EnumerationOrder verifies vertical candidates come first in
// x-adjacency order, then horizontal in y-adjacency order, and that
// consumption does not disturb positions.
func TestNewPool_EnumerationOrder(t *testing.T) {
	r := newRun(t, []pointset.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 4, Y: 4}})

	want := []Line{
		{Vertical, 1.0},
		{Vertical, 3.0},
		{Horizontal, 0.0},
		{Horizontal, 2.0},
	}
	require.Equal(t, want, r.pool.lines)

	r.pool.consume(1)
	assert.Equal(t, want, r.pool.lines, "consume must not reorder")
	assert.True(t, r.pool.consumed[1])
	assert.False(t, r.pool.consumed[0])
}

// TestNewPool_TrivialSizes verifies n ≤ 1 generates no candidates.
func TestNewPool_TrivialSizes(t *testing.T) {
	assert.Empty(t, newPool(pointset.New(nil)).lines)
	assert.Empty(t, newPool(pointset.New([]pointset.Point{{X: 1, Y: 1}})).lines)
}
