package separate_test

import (
	"testing"

	"github.com/katalvlaran/axisep/pointset"
	"github.com/katalvlaran/axisep/separate"
)

// benchmarkSeparate runs the full greedy loop over n fixed-seed points.
// Scoring dominates: O(n²) per live candidate per iteration.
func benchmarkSeparate(b *testing.B, n int) {
	set := pointset.New(randomPoints(7, n))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := separate.Separate(set); err != nil {
			b.Fatalf("Separate failed: %v", err)
		}
	}
}

// BenchmarkSeparate_Small exercises a typical coursework-sized instance.
func BenchmarkSeparate_Small(b *testing.B) { benchmarkSeparate(b, 25) }

// BenchmarkSeparate_Capacity exercises the default instance capacity.
func BenchmarkSeparate_Capacity(b *testing.B) { benchmarkSeparate(b, 100) }
