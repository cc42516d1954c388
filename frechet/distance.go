package frechet

import (
	"sort"

	"github.com/chaot4/frechet-distance/curve"
	"github.com/chaot4/frechet-distance/geom"
)

// Distance computes the continuous Fréchet distance between P and Q,
// per spec §4.6. It first binary-searches lessThan over a sorted set of
// candidate values (vertex-vertex distances, and the perpendicular
// distance from a vertex to an opposite segment when its foot of
// perpendicular falls on the segment). The distance can also be a value
// outside that set (where two vertices of one curve are equidistant from
// a point of the other's segment), so the search then bisects between
// the largest rejected candidate and the smallest accepted one until the
// midpoint no longer differs from either end in floating point.
func Distance(P, Q *curve.Curve, opts Options) (float64, error) {
	if err := validateCurves(P, Q); err != nil {
		return 0, err
	}

	candidates := candidateDistances(P, Q)
	sort.Float64s(candidates)

	d := NewDecider(opts)

	lo, hi := 0, len(candidates)-1
	ans := candidates[hi]
	for lo <= hi {
		mid := (lo + hi) / 2

		ok, err := d.LessThan(P, Q, candidates[mid], nil)
		if err != nil {
			return 0, err
		}

		if ok {
			ans = candidates[mid]
			hi = mid - 1
		} else {
			lo = mid + 1
		}
	}

	lower := 0.0
	if lo > 0 {
		lower = candidates[lo-1]
	}
	for k := 0; k < 200; k++ {
		mid := lower + (ans-lower)/2
		if mid <= lower || mid >= ans {
			break
		}
		ok, err := d.LessThan(P, Q, mid, nil)
		if err != nil {
			return 0, err
		}
		if ok {
			ans = mid
		} else {
			lower = mid
		}
	}

	return ans, nil
}

// candidateDistances builds the vertex-vertex and vertex-segment
// critical values that seed Distance's binary search.
func candidateDistances(P, Q *curve.Curve) []float64 {
	var out []float64

	for i := 0; i < P.Len(); i++ {
		for j := 0; j < Q.Len(); j++ {
			out = append(out, P.Point(i).Dist(Q.Point(j)))
		}
	}

	for i := 0; i < P.Len(); i++ {
		for j := 0; j < Q.Len()-1; j++ {
			if d, ok := perpendicularDistance(P.Point(i), Q.Point(j), Q.Point(j+1)); ok {
				out = append(out, d)
			}
		}
	}
	for j := 0; j < Q.Len(); j++ {
		for i := 0; i < P.Len()-1; i++ {
			if d, ok := perpendicularDistance(Q.Point(j), P.Point(i), P.Point(i+1)); ok {
				out = append(out, d)
			}
		}
	}

	return out
}

// perpendicularDistance returns the distance from c to segment (a,b)
// when the foot of the perpendicular from c falls strictly inside the
// segment's span, and false otherwise (the endpoint distances already
// cover that case via the vertex-vertex candidates).
func perpendicularDistance(c, a, b geom.Point) (float64, bool) {
	v := b.Sub(a)
	length := v.X*v.X + v.Y*v.Y
	if length == 0 {
		return 0, false
	}

	t := ((c.X-a.X)*v.X + (c.Y-a.Y)*v.Y) / length
	if t <= 0 || t >= 1 {
		return 0, false
	}

	foot := a.Lerp(b, t)

	return c.Dist(foot), true
}
