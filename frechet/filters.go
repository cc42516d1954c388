package frechet

import (
	"math"

	"github.com/chaot4/frechet-distance/curve"
	"github.com/chaot4/frechet-distance/geom"
	"github.com/chaot4/frechet-distance/metrics"
)

// FilterResult is the outcome of running the sound filter pipeline: a
// decisive answer, or Resolved==false meaning every filter was
// inconclusive and the caller must fall through to the full decider.
type FilterResult struct {
	Resolved bool
	LessThan bool
	Kind     metrics.FilterKind
}

// RunFilters runs the filter pipeline (spec §4.2) in order, stopping at
// the first decisive filter.
func RunFilters(P, Q *curve.Curve, delta float64) FilterResult {
	if P.Len() < 2 || Q.Len() < 2 {
		// The filters below assume at least one segment per curve; the
		// degenerate single-point case is handled directly by the decider.
		return FilterResult{}
	}

	if yes, ok := bichromaticExtentFilter(P, Q, delta); ok && yes {
		return FilterResult{Resolved: true, LessThan: true, Kind: metrics.FilterBichromaticExtent}
	}

	reached, stopI, stopJ := adaptiveGreedy(P, Q, delta)
	if reached {
		return FilterResult{Resolved: true, LessThan: true, Kind: metrics.FilterAdaptiveGreedy}
	}

	if no, ok := negativeFilter(P, Q, delta, stopI, stopJ); ok && no {
		return FilterResult{Resolved: true, LessThan: false, Kind: metrics.FilterNegative}
	}

	if yes, ok := adaptiveSimultaneousGreedy(P, Q, delta); ok && yes {
		return FilterResult{Resolved: true, LessThan: true, Kind: metrics.FilterAdaptiveSimultaneousGreedy}
	}

	return FilterResult{}
}

// bichromaticExtentFilter decides YES when the two curves' bounding
// boxes are close enough everywhere that the 3-waypoint traversal
// (0,0)->(n-1,0)->(n-1,m-1) is feasible by a bounding argument: the
// worst-case separation between any point of P's box and any point of
// Q's box is at most delta.
func bichromaticExtentFilter(P, Q *curve.Curve, delta float64) (yes, ok bool) {
	bp, bq := P.BBox(), Q.BBox()

	dx := math.Max(math.Abs(bp.MaxX-bq.MinX), math.Abs(bq.MaxX-bp.MinX))
	dy := math.Max(math.Abs(bp.MaxY-bq.MinY), math.Abs(bq.MaxY-bp.MinY))
	worst := math.Hypot(dx, dy)

	return worst <= delta, true
}

// isFree is the chord-radius test of spec §4.2: a sound, conservative
// certificate that the whole sub-chain C[s+1..e] stays within delta of
// the fixed point c, using the arc-length bracket around the midpoint
// vertex to bound how far any point in the sub-chain can be from it.
func isFree(c geom.Point, C *curve.Curve, s, e int, delta float64) bool {
	if e <= s {
		return c.Dist(C.Point(s)) <= delta
	}

	mid := (s + e + 2) / 2
	if mid > e {
		mid = e
	}
	if mid < s+1 {
		mid = s + 1
	}

	m := math.Max(C.Length(s+1, mid), C.Length(mid, e))
	if delta <= m {
		return false
	}

	bound := delta - m

	return c.DistSqr(C.Point(mid)) <= bound*bound
}

// advanceP reports whether P is proportionally behind Q (i/n <= j/m,
// cross-multiplied to avoid floating point) and so should be the curve
// advanced next by the greedy walk.
func advanceP(i, n, j, m int) bool {
	return i*m <= j*n
}

// adaptiveGreedy walks a monotone staircase from (0,0) toward
// (n-1, m-1) with an adaptive step, per spec §4.2. It is a filter, not
// a decider: any inconclusive step simply stops the walk early and
// reports the position reached, safe for the negative filter to resume
// from.
func adaptiveGreedy(P, Q *curve.Curve, delta float64) (reachedEnd bool, stopI, stopJ int) {
	n, m := P.Len(), Q.Len()
	i, j := 0, 0
	s := 1
	if P.Point(0).Dist(Q.Point(0)) > delta {
		return false, 0, 0
	}

	for i < n-1 || j < m-1 {
		var stepped bool

		if (i < n-1 && advanceP(i, n, j, m)) || j >= m-1 {
			step := s
			if i+step > n-1 {
				step = n - 1 - i
			}
			if isFree(Q.Point(j), P, i, i+step, delta) {
				i += step
				stepped = true
			}
		} else {
			step := s
			if j+step > m-1 {
				step = m - 1 - j
			}
			if isFree(P.Point(i), Q, j, j+step, delta) {
				j += step
				stepped = true
			}
		}

		if stepped {
			s = int(math.Ceil(1.5 * float64(s)))
			if s < 1 {
				s = 1
			}
			continue
		}

		if s > 1 {
			s /= 2
			continue
		}

		return false, i, j
	}

	return true, i, j
}

// adaptiveSimultaneousGreedy advances both curves in proportion to
// their remaining lengths, using a two-segment chord test: a step is
// accepted only when P's sub-chain passes against the fixed vertex
// Q[j] and then Q's sub-chain passes against P's new vertex
// P[i+stepI].
func adaptiveSimultaneousGreedy(P, Q *curve.Curve, delta float64) (reachedEnd, ok bool) {
	n, m := P.Len(), Q.Len()
	i, j := 0, 0
	s := 1
	if P.Point(0).Dist(Q.Point(0)) > delta {
		return false, true
	}

	for i < n-1 || j < m-1 {
		stepI, stepJ := s, s
		if i+stepI > n-1 {
			stepI = n - 1 - i
		}
		if j+stepJ > m-1 {
			stepJ = m - 1 - j
		}
		if stepI == 0 && stepJ == 0 {
			break
		}

		okP := stepI == 0 || isFree(Q.Point(j), P, i, i+stepI, delta)
		okQ := stepJ == 0 || isFree(P.Point(i+stepI), Q, j, j+stepJ, delta)

		if okP && okQ {
			i += stepI
			j += stepJ
			s = int(math.Ceil(1.5 * float64(s)))
			if s < 1 {
				s = 1
			}
			continue
		}

		if s > 1 {
			s /= 2
			continue
		}

		return false, true
	}

	return true, true
}

// isPointTooFarFromCurve reports whether every point of C (vertices and
// segment interiors) is farther than delta from c. This is the exact,
// O(len(C)) rendering of spec §4.2's adaptive doubling scan: the
// adaptive bracket-skipping optimization is not implemented (see
// DESIGN.md) since the filter's soundness, not its constant factor, is
// what correctness depends on.
func isPointTooFarFromCurve(c geom.Point, C *curve.Curve, delta float64) bool {
	deltaSqr := delta * delta

	for i := 0; i < C.Len(); i++ {
		if c.DistSqr(C.Point(i)) <= deltaSqr {
			return false
		}
	}
	for i := 0; i < C.Len()-1; i++ {
		if pointSegmentDistSqr(c, C.Point(i), C.Point(i+1)) <= deltaSqr {
			return false
		}
	}

	return true
}

func pointSegmentDistSqr(c, a, b geom.Point) float64 {
	v := b.Sub(a)
	length := v.X*v.X + v.Y*v.Y
	if length == 0 {
		return c.DistSqr(a)
	}

	t := ((c.X-a.X)*v.X + (c.Y-a.Y)*v.Y) / length
	t = math.Max(0, math.Min(1, t))

	return c.DistSqr(a.Lerp(b, t))
}

// negativeFilter resumes from the adaptive greedy's stopping position
// and decides NO when some point of one curve is provably farther than
// delta from every point of the other (spec §4.2).
func negativeFilter(P, Q *curve.Curve, delta float64, stopI, stopJ int) (no, ok bool) {
	if isPointTooFarFromCurve(Q.Point(stopJ), P, delta) {
		return true, true
	}
	if isPointTooFarFromCurve(P.Point(stopI), Q, delta) {
		return true, true
	}

	return false, false
}

// greedy is the plain, non-adaptive single-step staircase walk from
// spec §9's open question #3: present for the test_curves benchmark
// CLI's algo=greedy switch, never consulted by the production filter
// pipeline (RunFilters).
func greedy(P, Q *curve.Curve, delta float64) bool {
	n, m := P.Len(), Q.Len()
	i, j := 0, 0

	for i < n-1 || j < m-1 {
		if P.Point(i).Dist(Q.Point(j)) > delta {
			return false
		}

		switch {
		case i == n-1:
			j++
		case j == m-1:
			i++
		case advanceP(i, n, j, m):
			i++
		default:
			j++
		}
	}

	return P.Point(n-1).Dist(Q.Point(m-1)) <= delta
}
