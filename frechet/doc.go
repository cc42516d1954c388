// Package frechet implements the Fréchet distance decision procedure
// ("less-than" query): given curves P and Q and a threshold delta,
// decide whether the Fréchet distance between them is at most delta.
//
// What:
//
//   - A sound filter pipeline (bichromatic extent, adaptive greedy,
//     negative filter, adaptive simultaneous greedy) resolves most
//     inputs without ever materializing the free-space diagram.
//   - A recursive free-space box decomposition (LessThanLight) falls
//     back for filter-inconclusive inputs, propagating reachable
//     continuous intervals across box boundaries.
//   - A full O(n*m) per-cell decider (LessThanNaive) serves as the
//     ground-truth reference and as the certificate-construction engine.
//   - Certificate construction and independent checking (YES: a monotone
//     traversal; NO: a reverse-monotone empty cut mined with the pst
//     package) make every answer machine-checkable.
//   - Distance computes d_F(P, Q) by binary search over a finite set of
//     candidate distances, refined by bisection, using LessThan to
//     converge.
//
// Why:
//
//   - The filter pipeline resolves the overwhelming majority of
//     real-world query pairs in O(n+m); the full decider is reserved for
//     the hard remainder.
//
// Complexity:
//
//   - Filters: O(n+m) amortized.
//   - LessThanNaive: O(n*m).
//   - LessThanLight: O(n*m) worst case (this implementation recurses to
//     unit cells rather than using the qsimple O(log) boundary search —
//     see DESIGN.md), but early-exits via the empty-inputs and
//     boundary-pruning rules on favorable inputs.
//   - Distance: O(log(n*m)) LessThan calls over the candidate set, plus
//     at most 200 bisection calls.
package frechet
