package frechet

import (
	"github.com/chaot4/frechet-distance/curve"
	"github.com/chaot4/frechet-distance/geom"
)

// qsimpleKey identifies a memoized boundary query: a fixed point on one
// curve against an index sub-range of the other.
type qsimpleKey struct {
	fixedCurve curve.ID
	fixedIndex int
	lo, hi     int
}

// qsimpleCache memoizes per-boundary bounding-box queries keyed by
// (fixed_point, opposite_range), spec §9's QSimpleInterval cache. The
// full quasi-simple monotone-strand search (enabling an O(log) boundary
// crossing lookup via propagation rules 1/2) depends on undocumented
// interactions the spec itself flags as an open question (§9, §4.3);
// this implementation instead memoizes the bounding-box containment
// test used by the boundary-pruning rule, which is the one piece of the
// qsimple machinery the decider's correctness does not depend on
// guessing — see DESIGN.md.
type qsimpleCache struct {
	bbox map[qsimpleKey]geom.BBox
}

func newQSimpleCache() qsimpleCache {
	return qsimpleCache{bbox: make(map[qsimpleKey]geom.BBox)}
}

// subBBox returns (and memoizes) the bounding box of c's vertices in
// [lo, hi], fixed against fixedCurve/fixedIndex so repeated queries for
// the same sub-range across sibling boxes in the recursion reuse the
// cached result.
func (q *qsimpleCache) subBBox(c *curve.Curve, fixedCurve curve.ID, fixedIndex, lo, hi int) geom.BBox {
	key := qsimpleKey{fixedCurve: fixedCurve, fixedIndex: fixedIndex, lo: lo, hi: hi}
	if b, ok := q.bbox[key]; ok {
		return b
	}

	b := geom.EmptyBBox()
	for i := lo; i <= hi; i++ {
		b = b.Extend(c.Point(i))
	}
	q.bbox[key] = b

	return b
}

// clear resets the cache between decider invocations against a new
// (P, Q, delta) triple (spec §9: "all cache entries belong to the
// current (P, Q, delta)").
func (q *qsimpleCache) clear() {
	for k := range q.bbox {
		delete(q.bbox, k)
	}
}

// tooFarFromSubcurve reports whether point is farther than delta from
// every point of c's sub-range [lo, hi], using the cached bounding box
// as a conservative (sound, possibly-false-negative) lower bound: if
// the closest point of the bounding box to point is already farther
// than delta, every point inside it is too.
func (q *qsimpleCache) tooFarFromSubcurve(c *curve.Curve, fixedCurve curve.ID, fixedIndex, lo, hi int, point geom.Point, delta float64) bool {
	b := q.subBBox(c, fixedCurve, fixedIndex, lo, hi)

	clampedX := clamp(point.X, b.MinX, b.MaxX)
	clampedY := clamp(point.Y, b.MinY, b.MaxY)
	closest := geom.Point{X: clampedX, Y: clampedY}

	return point.Dist(closest) > delta
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
