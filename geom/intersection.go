package geom

import "math"

// smallDistanceAt reports whether the point at parameter t along the
// segment a->b lies within radiusSqr of center.
func smallDistanceAt(t float64, a, b, center Point, radiusSqr float64) bool {
	return center.DistSqr(a.Lerp(b, t)) <= radiusSqr
}

// FreeInterval returns the maximal [begin, end] subset of [0,1] such that
// the point a+lambda*(b-a) lies within radius of center, together with an
// outer interval that strictly contains it (see geom package doc for the
// exact guarantee). Both intervals are empty (IsEmpty()==true) if the
// segment never enters the disk.
//
// FreeInterval solves the quadratic
//
//	lambda^2*|v|^2 + 2*lambda*<a-center,v> + (|a-center|^2 - radius^2) = 0
//
// with v = b-a, tests the endpoints and the vertex of the quadratic for
// containment, and falls back to bisection (tolerance saveEps) whenever
// the closed-form evaluation is numerically inconsistent with the
// endpoint tests. a==b is degenerate and answers with a single point or
// the empty interval depending on whether a lies in the disk.
func FreeInterval(center Point, radius float64, a, b Point) (inner, outer Interval) {
	v := b.Sub(a)
	radiusSqr := radius * radius

	aa := v.X*v.X + v.Y*v.Y
	if aa == 0 {
		// Degenerate segment: a single point, free iff within radius.
		if center.DistSqr(a) <= radiusSqr {
			return Interval{Begin: 0, End: 1}, Interval{Begin: -Eps, End: 1 + Eps}
		}

		return EmptyInterval(), EmptyInterval()
	}

	bb := (a.X-center.X)*v.X + (a.Y-center.Y)*v.Y
	cc := (a.X-center.X)*(a.X-center.X) + (a.Y-center.Y)*(a.Y-center.Y) - radiusSqr

	mid := -bb / aa
	discriminant := mid*mid - cc/aa

	smallAtZero := smallDistanceAt(0, a, b, center, radiusSqr)
	smallAtOne := smallDistanceAt(1, a, b, center, radiusSqr)
	smallAtMid := smallDistanceAt(mid, a, b, center, radiusSqr)

	if smallAtZero && smallAtOne {
		return Interval{Begin: 0, End: 1}, Interval{Begin: -Eps, End: 1 + Eps}
	}

	if !smallAtMid && smallAtZero {
		mid = 0
		smallAtMid = true
	} else if !smallAtMid && smallAtOne {
		mid = 1
		smallAtMid = true
	}

	if !smallAtMid {
		return EmptyInterval(), EmptyInterval()
	}
	if mid <= 0 && !smallAtZero {
		return EmptyInterval(), EmptyInterval()
	}
	if mid >= 1 && !smallAtOne {
		return EmptyInterval(), EmptyInterval()
	}

	discriminant = math.Max(discriminant, 0)
	sqrtDiscr := 0.0
	sqrtComputed := false

	var begin, end, outerBegin, outerEnd float64

	if smallAtZero {
		begin = 0
		outerBegin = -Eps
	} else {
		sqrtDiscr = math.Sqrt(discriminant)
		sqrtComputed = true

		lambda1 := mid - sqrtDiscr
		innerShift := math.Min(lambda1+saveEps/2, math.Min(1, mid))
		outerShift := lambda1 - saveEps/2
		if innerShift >= outerShift &&
			smallDistanceAt(innerShift, a, b, center, radiusSqr) &&
			!smallDistanceAt(outerShift, a, b, center, radiusSqr) {
			begin = innerShift
			outerBegin = outerShift
		} else {
			left, right := 0.0, math.Min(mid, 1)
			for right-left > saveEps {
				m := 0.5 * (left + right)
				if smallDistanceAt(m, a, b, center, radiusSqr) {
					right = m
				} else {
					left = m
				}
			}
			begin = right
			outerBegin = left
		}
	}

	if smallAtOne {
		end = 1
		outerEnd = 1 + Eps
	} else {
		if !sqrtComputed {
			sqrtDiscr = math.Sqrt(discriminant)
		}

		lambda2 := mid + sqrtDiscr
		innerShift := math.Max(lambda2-saveEps/2, math.Max(0, mid))
		outerShift := lambda2 + saveEps/2
		if innerShift <= outerShift &&
			smallDistanceAt(innerShift, a, b, center, radiusSqr) &&
			!smallDistanceAt(outerShift, a, b, center, radiusSqr) {
			end = innerShift
			outerEnd = outerShift
		} else {
			left, right := math.Max(mid, 0), 1.0
			for right-left > saveEps {
				m := 0.5 * (left + right)
				if smallDistanceAt(m, a, b, center, radiusSqr) {
					left = m
				} else {
					right = m
				}
			}
			end = left
			outerEnd = right
		}
	}

	return Interval{Begin: begin, End: end}, Interval{Begin: outerBegin, End: outerEnd}
}
