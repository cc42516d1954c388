package frechet

import (
	"math"

	"github.com/chaot4/frechet-distance/geom"
)

// cellOutputs computes the reachable output intervals on the top and
// right boundary of a single free-space unit cell from its four
// boundary free intervals and its two boundary inputs, per spec §4.3's
// "standard one-cell propagation" rule.
//
// The free cell region (the unit square intersected with the disk
// ellipse) is convex, since both the square and the disk are convex and
// intersections of convex sets are convex. Two consequences ground this
// rule:
//
//  1. if the bottom input is non-empty, every point of freeRight is
//     reachable: a path running from any point of inBottom straight to
//     any point of freeRight stays in the free region (both endpoints
//     are in it, so by convexity the whole segment is too) and is
//     coordinate-monotone since it only increases both I and J.
//  2. if the left input is non-empty, every point of freeTop is
//     reachable by the symmetric argument.
//
// The other direction is bounded rather than unconstrained: reaching a
// point t on freeRight starting from the left input requires t to be at
// least as large as the smallest reachable value on the left input,
// since a coordinate-monotone path can never decrease J. Symmetric for
// reaching freeTop from the bottom input, bounded below by the bottom
// input's own smallest reachable value.
func cellOutputs(freeBottom, freeLeft, freeTop, freeRight geom.Interval, inBottom, inLeft geom.Interval) (outTop, outRight geom.Interval) {
	outTop = geom.EmptyInterval()
	if !freeTop.IsEmpty() {
		switch {
		case !inLeft.IsEmpty():
			outTop = freeTop
		case !inBottom.IsEmpty():
			begin := math.Max(freeTop.Begin, inBottom.Begin)
			if begin <= freeTop.End {
				outTop = geom.Interval{Begin: begin, End: freeTop.End}
			}
		}
	}

	outRight = geom.EmptyInterval()
	if !freeRight.IsEmpty() {
		switch {
		case !inBottom.IsEmpty():
			outRight = freeRight
		case !inLeft.IsEmpty():
			begin := math.Max(freeRight.Begin, inLeft.Begin)
			if begin <= freeRight.End {
				outRight = geom.Interval{Begin: begin, End: freeRight.End}
			}
		}
	}

	return
}
