// Package pst implements a static 2-D priority search tree supporting
// "report and delete every point dominated by a corner" — the primitive
// the NO-certificate miner uses to stitch together a reverse-monotone
// empty staircase in amortized near-linear time.
//
// What:
//
//   - New: array-embedded implicit binary tree over a fixed point set.
//     The root holds the overall y-minimum; the remaining points are
//     split at the median x into left/right subtrees, recursively.
//   - ReportAndDelete: reports and removes every live point (x, y) with
//     x >= corner.X and y <= corner.Y.
//
// Why:
//
//   - Once reported, a point cannot be reused by a later stitch step;
//     deletion restores the heap property by rotating a child up into
//     the removed slot, recursively to a leaf, so the tree never needs
//     rebuilding mid-query.
//
// Complexity:
//
//   - New: O(n log^2 n) (a sort at every tree level).
//   - Total cost of k ReportAndDelete calls reporting r points overall:
//     O((k + r) log n). After n deletions the tree is empty.
package pst
