// Package instance is the file boundary around the separation engine:
// it reads numbered point-instance files, writes solution files, and
// drives whole directories of instances through the engine.
//
// Formats:
//
//   - Instance file: the point count, then one "x y" pair per point,
//     whitespace-separated. Points arrive pre-sorted ascending by X.
//   - Solution file: the committed line count, then one "v C" or "h C"
//     record per line with the coordinate to one decimal place, in
//     commit order.
//
// The reader validates what the engine assumes: a present count, a count
// matching the records actually found, and a configurable capacity
// ceiling (DefaultMaxPoints). Violations are sentinel errors; the engine
// never sees a malformed instance.
//
// Runner processes input/instanceNN.txt for NN = 01..99, writing
// greedy_solutionNN.txt next to each success. A bad instance is logged
// and skipped — instances are independent, so one failure never affects
// the next.
//
// Errors:
//
//   - ErrNoPoints: the file carries no point count.
//   - ErrCountMismatch: declared count ≠ coordinate pairs found.
//   - ErrTooManyPoints: declared count exceeds the capacity ceiling.
package instance
