// Package separate implements the greedy axis-parallel separation engine.
//
// What:
//
//   - Generates one candidate line per consecutive pair in each sorted
//     order (vertical candidates from the X order, horizontal from the Y
//     order), placed at the pair's arithmetic midpoint — 2·(n−1)
//     candidates for n points.
//   - Repeatedly commits the candidate cutting the most still-active
//     links, removes the links it cuts, and retires the candidate, until
//     no links remain.
//   - Returns the committed lines in commit order; that order is the
//     observable output and is reproducible for identical input.
//
// Why:
//
//   - Separating every pair of points with few axis-parallel lines shows
//     up in layout partitioning, spatial indexing, and classic algorithmic
//     coursework. A greedy cut-the-most heuristic gives small (not proven
//     minimal) solutions with predictable behavior.
//
// Determinism:
//
//   - Candidate enumeration order is fixed: vertical candidates in
//     x-adjacency order, then horizontal candidates in y-adjacency order.
//   - Selection keeps the first-enumerated candidate among equal top
//     scores; a later equal score never replaces the incumbent.
//
// Complexity:
//
//   - One scoring pass: O(c·n²) for c live candidates; the full loop is
//     bounded by 2·(n−1) commits, so worst case O(n⁴) — n is small by
//     contract (the instance capacity).
//
// Errors:
//
//   - ErrPoolExhausted: no positive-scoring live candidate exists while
//     links remain. Unreachable for a pool generated from sorted
//     adjacency; checked so a broken precondition aborts the instance
//     instead of emitting an incomplete solution.
//   - linkgraph.ErrConstruct (wrapped): the connectivity graph failed its
//     construction recount.
package separate
