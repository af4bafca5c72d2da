// Package pointset holds the point data the separation engine works on:
// an immutable slice of 2D points plus the two index orders (ascending by
// X, ascending by Y) every other component navigates through.
//
// Points are referenced by index, never by copy, so connectivity state
// kept elsewhere stays consistent with the coordinates kept here.
package pointset

import "sort"

// Point is a single 2D point. Identity is positional: components refer to
// a point by its index inside the owning Set.
type Point struct {
	X, Y float64
}

// Set owns an ordered collection of points together with both sorted
// index orders. Immutable once built; one Set per processed instance.
type Set struct {
	points []Point
	byX    []int
	byY    []int
}

// New builds a Set from pts. The slice is deep-copied so later mutation
// by the caller cannot corrupt the orders.
//
// Points are expected pre-sorted ascending by X (the instance-file
// contract), so ByX is the identity permutation. ByY is computed here
// with a stable sort: equal-Y points keep their input order. The
// algorithm itself does not need that stability — reproducibility of
// outputs does.
//
// Complexity: O(n log n) time, O(n) memory.
func New(pts []Point) *Set {
	s := &Set{
		points: make([]Point, len(pts)),
		byX:    make([]int, len(pts)),
		byY:    make([]int, len(pts)),
	}
	copy(s.points, pts)
	for i := range s.points {
		s.byX[i] = i
		s.byY[i] = i
	}
	sort.SliceStable(s.byY, func(a, b int) bool {
		return s.points[s.byY[a]].Y < s.points[s.byY[b]].Y
	})

	return s
}

// Len returns the number of points in the Set.
func (s *Set) Len() int { return len(s.points) }

// At returns the point with index i. Panics if i is out of range,
// matching slice semantics.
func (s *Set) At(i int) Point { return s.points[i] }

// ByX returns point indices in ascending-X order (the input order).
// Callers must treat the returned slice as read-only.
func (s *Set) ByX() []int { return s.byX }

// ByY returns point indices in ascending-Y order.
// Callers must treat the returned slice as read-only.
func (s *Set) ByY() []int { return s.byY }
