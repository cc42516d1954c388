package frechet

import (
	"github.com/chaot4/frechet-distance/curve"
	"github.com/chaot4/frechet-distance/geom"
	"github.com/chaot4/frechet-distance/internal/debugflag"
)

// lightRun holds the per-invocation state threaded through the
// recursive box decomposition: the two curves, delta, the active
// Options, and counters/hooks that accumulate across the whole call.
type lightRun struct {
	P, Q   *curve.Curve
	delta  float64
	opts   Options
	cache  *qsimpleCache
	boxes  int64
}

// LessThanLight decides lessThan(delta, P, Q) via the recursive
// free-space box decomposition described in spec §4.3. It does not run
// the filter pipeline; callers wanting the full production path should
// use Decider.LessThan.
func LessThanLight(P, Q *curve.Curve, delta float64, opts Options) (bool, int64) {
	return lessThanLightCached(P, Q, delta, opts, newCacheFor(opts))
}

// lessThanLightCached is LessThanLight with caller-supplied qsimple-cache
// storage, letting a Decider reuse its cache's backing map across calls
// at different delta against the same curve pair (spec §5's private
// per-thread scratch state).
func lessThanLightCached(P, Q *curve.Curve, delta float64, opts Options, cache *qsimpleCache) (bool, int64) {
	if ans, ok := lessThanDegenerate(P, Q, delta); ok {
		return ans, 0
	}

	run := &lightRun{P: P, Q: Q, delta: delta, opts: opts, cache: cache}

	root := box{
		I1: 0, I2: P.Len() - 1,
		J1: 0, J2: Q.Len() - 1,
		BottomIn: []curve.CInterval{initialReachable(Q.Point(0), P, delta)},
		LeftIn:   []curve.CInterval{initialReachable(P.Point(0), Q, delta)},
	}

	topOut, rightOut := run.getReachableIntervals(root)

	corner := curve.CPoint{I: P.Len() - 1, F: 0}
	return containsEnd(topOut, corner) || containsEndOnRight(rightOut, Q.Len()-1), run.boxes
}

func newCacheFor(opts Options) *qsimpleCache {
	c := newQSimpleCache()
	return &c
}

// containsEnd reports whether any CInterval in tops (on the P axis)
// reaches exactly P's last vertex.
func containsEnd(tops []curve.CInterval, end curve.CPoint) bool {
	for _, iv := range tops {
		if !iv.IsEmpty() && iv.End.GreaterEq(end) {
			return true
		}
	}

	return false
}

// containsEndOnRight reports whether any CInterval in rights (on the Q
// axis) reaches exactly Q's last vertex.
func containsEndOnRight(rights []curve.CInterval, lastIdx int) bool {
	end := curve.CPoint{I: lastIdx, F: 0}
	return containsEnd(rights, end)
}

// getReachableIntervals implements the first four rungs of spec §4.3's
// six-rule pruning ladder: empty inputs, cell case, boundary pruning,
// split-and-recurse (PruneLevel 0..2; see types.go). Box-shrinking and
// the qsimple O(log) propagation rules 1/2 are not implemented (see
// DESIGN.md): their exact interaction is the spec's own flagged open
// question, and recursing to unit cells is sound and already bounded by
// the empty-inputs and boundary-pruning rules on favorable inputs.
func (r *lightRun) getReachableIntervals(b box) (topOut, rightOut []curve.CInterval) {
	debugflag.Assert(b.I1 < b.I2 && b.J1 < b.J2, "box dataflow: degenerate or inverted box reached getReachableIntervals")
	r.boxes++

	if r.opts.PruneLevel >= PruneEmptyInputs && len(b.BottomIn) == 0 && len(b.LeftIn) == 0 && !b.containsOrigin() {
		return nil, nil
	}

	if b.I2-b.I1 == 1 && b.J2-b.J1 == 1 {
		return r.cellCase(b)
	}

	if r.opts.PruneLevel >= PruneBoundary && r.boundaryPruned(b) {
		return nil, nil
	}

	iWidth, jWidth := b.I2-b.I1, b.J2-b.J1

	switch {
	case iWidth == 1:
		return r.splitJ(b)
	case jWidth == 1:
		return r.splitI(b)
	default:
		return r.splitQuadrants(b)
	}
}

// splitJ handles a box of width 1 along I (no I-split possible): split
// along J into a lower and upper half, stacked so the lower half's top
// output feeds the upper half's bottom input.
func (r *lightRun) splitJ(b box) (topOut, rightOut []curve.CInterval) {
	jm := (b.J1 + b.J2) / 2

	lower := box{
		I1: b.I1, I2: b.I2, J1: b.J1, J2: jm,
		BottomIn: b.BottomIn,
		LeftIn:   restrictList(b.LeftIn, curve.CPoint{I: b.J1}, curve.CPoint{I: jm}),
	}
	lowTop, lowRight := r.getReachableIntervals(lower)

	upper := box{
		I1: b.I1, I2: b.I2, J1: jm, J2: b.J2,
		BottomIn: lowTop,
		LeftIn:   restrictList(b.LeftIn, curve.CPoint{I: jm}, curve.CPoint{I: b.J2}),
	}
	upTop, upRight := r.getReachableIntervals(upper)

	return upTop, mergeLists(lowRight, upRight)
}

// splitI handles a box of width 1 along J (no J-split possible):
// symmetric to splitJ with I and J swapped.
func (r *lightRun) splitI(b box) (topOut, rightOut []curve.CInterval) {
	im := (b.I1 + b.I2) / 2

	left := box{
		I1: b.I1, I2: im, J1: b.J1, J2: b.J2,
		BottomIn: restrictList(b.BottomIn, curve.CPoint{I: b.I1}, curve.CPoint{I: im}),
		LeftIn:   b.LeftIn,
	}
	leftTop, leftRight := r.getReachableIntervals(left)

	right := box{
		I1: im, I2: b.I2, J1: b.J1, J2: b.J2,
		BottomIn: restrictList(b.BottomIn, curve.CPoint{I: im}, curve.CPoint{I: b.I2}),
		LeftIn:   leftRight,
	}
	rightTop, rightRight := r.getReachableIntervals(right)

	return mergeLists(leftTop, rightTop), rightRight
}

// splitQuadrants handles the general case: bisect both axes and recurse
// on lower-left, lower-right, upper-left, upper-right in the order that
// preserves the monotone input->output dataflow (spec §4.3).
func (r *lightRun) splitQuadrants(b box) (topOut, rightOut []curve.CInterval) {
	im := (b.I1 + b.I2) / 2
	jm := (b.J1 + b.J2) / 2

	ll := box{
		I1: b.I1, I2: im, J1: b.J1, J2: jm,
		BottomIn: restrictList(b.BottomIn, curve.CPoint{I: b.I1}, curve.CPoint{I: im}),
		LeftIn:   restrictList(b.LeftIn, curve.CPoint{I: b.J1}, curve.CPoint{I: jm}),
	}
	llTop, llRight := r.getReachableIntervals(ll)

	lr := box{
		I1: im, I2: b.I2, J1: b.J1, J2: jm,
		BottomIn: restrictList(b.BottomIn, curve.CPoint{I: im}, curve.CPoint{I: b.I2}),
		LeftIn:   llRight,
	}
	lrTop, lrRight := r.getReachableIntervals(lr)

	ul := box{
		I1: b.I1, I2: im, J1: jm, J2: b.J2,
		BottomIn: llTop,
		LeftIn:   restrictList(b.LeftIn, curve.CPoint{I: jm}, curve.CPoint{I: b.J2}),
	}
	ulTop, ulRight := r.getReachableIntervals(ul)

	ur := box{
		I1: im, I2: b.I2, J1: jm, J2: b.J2,
		BottomIn: lrTop,
		LeftIn:   ulRight,
	}
	urTop, urRight := r.getReachableIntervals(ur)

	return mergeLists(ulTop, urTop), mergeLists(lrRight, urRight)
}

// cellCase computes outputs for a 1x1 box directly from its boundary
// free intervals, via the shared cellOutputs propagation rule.
func (r *lightRun) cellCase(b box) (topOut, rightOut []curve.CInterval) {
	i, j := b.I1, b.J1
	freeBottom, freeLeft, freeTop, freeRight := cellAt(r.P, r.Q, r.delta, i, j)

	bottomNE, bottomBegin := reduceList(b.BottomIn, i)
	leftNE, leftBegin := reduceList(b.LeftIn, j)

	inBottom, inLeft := geom.EmptyInterval(), geom.EmptyInterval()
	if bottomNE {
		inBottom = geom.Interval{Begin: bottomBegin, End: 1}
	}
	if leftNE {
		inLeft = geom.Interval{Begin: leftBegin, End: 1}
	}

	outTopLocal, outRightLocal := cellOutputs(freeBottom, freeLeft, freeTop, freeRight, inBottom, inLeft)

	hooks := r.opts.Hooks

	if !outTopLocal.IsEmpty() {
		iv := curve.NewCInterval(curve.NewCPoint(i, outTopLocal.Begin), curve.NewCPoint(i, outTopLocal.End))
		if hooks != nil && hooks.OnReachable != nil {
			hooks.OnReachable(0, 1, curve.CPoint{I: j + 1, F: 0}, iv)
		}
		topOut = []curve.CInterval{iv}
	} else if hooks != nil && hooks.OnEmpty != nil {
		hooks.OnEmpty(1, curve.CPoint{I: j + 1, F: 0}, curve.CPoint{I: i, F: 0}, curve.CPoint{I: i + 1, F: 0})
	}

	if !outRightLocal.IsEmpty() {
		iv := curve.NewCInterval(curve.NewCPoint(j, outRightLocal.Begin), curve.NewCPoint(j, outRightLocal.End))
		if hooks != nil && hooks.OnReachable != nil {
			hooks.OnReachable(1, 0, curve.CPoint{I: i + 1, F: 0}, iv)
		}
		rightOut = []curve.CInterval{iv}
	} else if hooks != nil && hooks.OnEmpty != nil {
		hooks.OnEmpty(0, curve.CPoint{I: i + 1, F: 0}, curve.CPoint{I: j, F: 0}, curve.CPoint{I: j + 1, F: 0})
	}

	return topOut, rightOut
}

// boundaryPruned implements the boundary-pruning rule: if the fixed
// points defining both the top and right output boundaries are farther
// than delta from every point of the opposite sub-curve spanning this
// box, both outputs are empty regardless of inputs.
func (r *lightRun) boundaryPruned(b box) bool {
	topFixed := r.Q.Point(b.J2)
	rightFixed := r.P.Point(b.I2)

	topFar := r.cache.tooFarFromSubcurve(r.P, 1, b.J2, b.I1, b.I2, topFixed, r.delta)
	rightFar := r.cache.tooFarFromSubcurve(r.Q, 0, b.I2, b.J1, b.J2, rightFixed, r.delta)

	return topFar && rightFar
}

// restrictList clips every CInterval in list to [lo, hi] (both endpoints
// sharing the axis the list lives on), dropping intervals that become
// empty.
func restrictList(list []curve.CInterval, lo, hi curve.CPoint) []curve.CInterval {
	var out []curve.CInterval
	for _, iv := range list {
		if iv.IsEmpty() {
			continue
		}
		c := iv
		c.Clamp(lo, hi)
		if !c.IsEmpty() {
			out = append(out, c)
		}
	}

	return out
}

// mergeLists folds every CInterval in lists into one sorted,
// non-overlapping list via curve.MergeCInterval.
func mergeLists(lists ...[]curve.CInterval) []curve.CInterval {
	var out []curve.CInterval
	for _, list := range lists {
		for _, iv := range list {
			out = curve.MergeCInterval(out, iv)
		}
	}

	return out
}

// reduceList reports whether list (expected confined to segment index
// axisIndex) is non-empty, and if so the smallest reachable fraction
// among its pieces.
func reduceList(list []curve.CInterval, axisIndex int) (nonEmpty bool, minBeginFrac float64) {
	minBeginFrac = 1
	for _, iv := range list {
		if iv.IsEmpty() {
			continue
		}
		f := 0.0
		if iv.Begin.I == axisIndex {
			f = iv.Begin.F
		} else if iv.Begin.I > axisIndex {
			f = 1
		}
		if !nonEmpty || f < minBeginFrac {
			minBeginFrac = f
		}
		nonEmpty = true
	}

	return nonEmpty, minBeginFrac
}

// initialReachable computes the root box's bottom (or left) input: the
// prefix of other's curve, starting at its first vertex, that stays
// continuously within delta of the fixed point (spec §4.3, "clipped
// against reachability from the origin"). Reachability along this
// boundary can only ever be a single contiguous prefix, since the
// boundary is pinned to a single fixed point and any gap breaks the
// monotone path.
func initialReachable(fixed geom.Point, other *curve.Curve, delta float64) curve.CInterval {
	if fixed.Dist(other.Point(0)) > delta {
		return curve.EmptyCInterval()
	}

	reachEnd := curve.CPoint{I: 0, F: 0}
	for i := 0; i < other.Len()-1; i++ {
		inner, _ := geom.FreeInterval(fixed, delta, other.Point(i), other.Point(i+1))
		if inner.IsEmpty() || inner.Begin > geom.Eps {
			break
		}
		reachEnd = curve.NewCPoint(i, inner.End)
		if inner.End < 1-geom.Eps {
			break
		}
	}

	return curve.NewCInterval(curve.CPoint{I: 0, F: 0}, reachEnd)
}

// lessThanDegenerate handles the case where one curve is a single
// point: the Fréchet distance to a single point P[0] collapses to the
// farthest distance from P[0] to any point of the other curve, and
// since distance-to-a-fixed-point is convex along a segment, the
// farthest point is always a vertex.
func lessThanDegenerate(P, Q *curve.Curve, delta float64) (answer bool, ok bool) {
	switch {
	case P.Len() == 1 && Q.Len() == 1:
		return P.Point(0).Dist(Q.Point(0)) <= delta, true
	case P.Len() == 1:
		return farthestVertexWithin(P.Point(0), Q, delta), true
	case Q.Len() == 1:
		return farthestVertexWithin(Q.Point(0), P, delta), true
	default:
		return false, false
	}
}

func farthestVertexWithin(fixed geom.Point, c *curve.Curve, delta float64) bool {
	for i := 0; i < c.Len(); i++ {
		if fixed.Dist(c.Point(i)) > delta {
			return false
		}
	}

	return true
}
