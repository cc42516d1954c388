// Package geom provides the 2-D geometry primitives the rest of this
// module is built on: points, intervals, and the segment/disk
// intersection solver that underlies every free-space computation.
//
// What:
//
//   - Point: double-precision (x, y) with the arithmetic curves need.
//   - Interval: a [begin, end] range of doubles, empty iff begin > end.
//   - FreeInterval: solves "which part of a segment lies within radius r
//     of a disk center" — the single geometric primitive the free-space
//     decider, the filter pipeline, and distance computation all reduce to.
//
// Why:
//
//   - Every cell of the free-space diagram is, by definition, the
//     intersection of a unit square with an ellipse; FreeInterval answers
//     the corresponding 1-D question on a cell boundary.
//
// Complexity:
//
//   - FreeInterval: O(1) in the common case, O(log(1/Eps)) when the
//     closed-form solution is numerically inconsistent and a bisection
//     refinement is required.
package geom
