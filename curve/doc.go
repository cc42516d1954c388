// Package curve defines the ordered-point-sequence Curve type and the
// continuous-position arithmetic (CPoint, CInterval) that the free-space
// decider walks across.
//
// What:
//
//   - Curve: an immutable []geom.Point with a precomputed prefix
//     arc-length table and a cached bounding box. Consecutive duplicate
//     points are dropped at construction.
//   - ID: a phantom-typed index distinguishing "which curve" a
//     CPoint or CInterval belongs to, so the two curves of a query can
//     never be silently swapped (see original_source/id.h's ID<T>).
//   - CPoint: a continuous position (segment index, fraction) on a
//     single curve, with lexicographic ordering and carrying ±1-fraction
//     arithmetic.
//   - CInterval: an interval of CPoints on one curve, optionally
//     annotated with the CPoint on the *other* curve at which this
//     free-boundary interval lives (populated only when a certificate
//     is requested).
//
// Why:
//
//   - Every reachability computation in the decider is phrased in terms
//     of CPoints and CIntervals rather than raw floats, so the code that
//     walks box boundaries never has to special-case vertex versus
//     interior positions.
//
// Complexity:
//
//   - New: O(n).
//   - CPoint comparisons/arithmetic: O(1).
package curve
