// Package linkgraph tracks which pairs of points are still connected
// while the separation engine commits lines.
//
// What:
//
//   - Graph is a complete symmetric boolean relation over n point indices,
//     bitset-backed: one word-packed row per point.
//   - Links start fully present (every distinct pair linked) and are only
//     ever removed; there is no relink operation.
//   - ActiveCount reports remaining directed entries; 0 means every pair
//     of points has been separated.
//
// Why:
//
//   - The greedy separator scores candidate lines by how many active
//     links they would cut, then removes exactly those links on commit.
//     It needs O(1) membership queries and an O(1) global counter.
//
// Complexity:
//
//   - New:         O(n²) time, O(n²/64) memory.
//   - IsLinked:    O(1).
//   - Unlink:      O(1), idempotent.
//   - ActiveCount: O(1).
//
// Errors:
//
//   - ErrConstruct: the realized directed-entry count after building the
//     complete graph does not equal n·(n−1), or n is negative. A corrupted
//     point count reached the engine; the current instance must be aborted.
package linkgraph
