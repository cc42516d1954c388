package frechet

import (
	"github.com/chaot4/frechet-distance/curve"
	"github.com/chaot4/frechet-distance/geom"
)

// cellMark records, for one cell of the naive decider's full free-space
// grid, which input drove each non-empty output: "full" coverage (the
// branch unconstrained by the other input's begin value) or "bounded"
// (constrained by it). Certificate reconstruction walks this grid
// backwards from the final corner, using these flags to pick which
// neighboring cell produced the interval it is tracing through.
type cellMark struct {
	topFromLeft    bool
	rightFromBottom bool
}

// naiveGrid is the full free-space DP grid computed by runNaive: H[i][j]
// is the reachable interval on the horizontal edge fixed at Q[j]
// spanning P's segment i (i in [0,n-2], j in [0,m-1]); V[i][j] is the
// reachable interval on the vertical edge fixed at P[i] spanning Q's
// segment j (i in [0,n-1], j in [0,m-2]).
type naiveGrid struct {
	P, Q  *curve.Curve
	delta float64
	n, m  int
	H     [][]geom.Interval
	V     [][]geom.Interval
	mark  [][]cellMark
}

// runNaive computes the full O(n*m) free-space reachability grid. hooks,
// if non-nil, are invoked once per computed boundary segment exactly as
// the light decider's cellCase does, including the column-0/row-0 base
// case: a base-case segment that is literally empty (not merely
// disconnected from the origin) fires OnEmpty the same as any interior
// cell, so certificate reconstruction can anchor on the diagram's left
// and bottom edges, not just its right and top ones.
func runNaive(P, Q *curve.Curve, delta float64, hooks *Hooks) *naiveGrid {
	n, m := P.Len(), Q.Len()
	g := &naiveGrid{P: P, Q: Q, delta: delta, n: n, m: m}

	g.H = make([][]geom.Interval, n-1)
	for i := range g.H {
		g.H[i] = make([]geom.Interval, m)
	}
	g.V = make([][]geom.Interval, n)
	for i := range g.V {
		g.V[i] = make([]geom.Interval, m-1)
	}
	g.mark = make([][]cellMark, n-1)
	for i := range g.mark {
		g.mark[i] = make([]cellMark, m-1)
	}

	// Column 0 / row 0 base case: prefix-continuity reachability from the
	// origin along each of the two diagram edges pinned to the other
	// curve's first vertex.
	reachable := true
	for i := 0; i < n-1; i++ {
		freeH, _ := geom.FreeInterval(Q.Point(0), delta, P.Point(i), P.Point(i+1))
		if !reachable || freeH.IsEmpty() || freeH.Begin > geom.Eps {
			g.H[i][0] = geom.EmptyInterval()
			// Only a literally empty interval proves both of this
			// segment's corners infeasible; a merely disconnected
			// (Begin>Eps) interval is still partly free and must not
			// be recorded as a certificate anchor.
			if freeH.IsEmpty() && hooks != nil && hooks.OnEmpty != nil {
				hooks.OnEmpty(1, curve.CPoint{I: 0, F: 0}, curve.CPoint{I: i, F: 0}, curve.CPoint{I: i + 1, F: 0})
			}
			reachable = false
			continue
		}
		g.H[i][0] = freeH
		if freeH.End < 1-geom.Eps {
			reachable = false
		}
	}
	reachable = true
	for j := 0; j < m-1; j++ {
		freeV, _ := geom.FreeInterval(P.Point(0), delta, Q.Point(j), Q.Point(j+1))
		if !reachable || freeV.IsEmpty() || freeV.Begin > geom.Eps {
			g.V[0][j] = geom.EmptyInterval()
			if freeV.IsEmpty() && hooks != nil && hooks.OnEmpty != nil {
				hooks.OnEmpty(0, curve.CPoint{I: 0, F: 0}, curve.CPoint{I: j, F: 0}, curve.CPoint{I: j + 1, F: 0})
			}
			reachable = false
			continue
		}
		g.V[0][j] = freeV
		if freeV.End < 1-geom.Eps {
			reachable = false
		}
	}

	for j := 0; j < m-1; j++ {
		for i := 0; i < n-1; i++ {
			freeBottom, freeLeft, freeTop, freeRight := cellAt(P, Q, delta, i, j)
			inBottom := g.H[i][j]
			inLeft := g.V[i][j]

			outTop, outRight := cellOutputs(freeBottom, freeLeft, freeTop, freeRight, inBottom, inLeft)

			g.mark[i][j] = cellMark{
				topFromLeft:     !inLeft.IsEmpty(),
				rightFromBottom: !inBottom.IsEmpty(),
			}

			g.H[i][j+1] = outTop
			g.V[i+1][j] = outRight

			fireHooks(hooks, i, j, outTop, outRight)
		}
	}

	return g
}

func fireHooks(hooks *Hooks, i, j int, outTop, outRight geom.Interval) {
	if hooks == nil {
		return
	}

	if outTop.IsEmpty() {
		if hooks.OnEmpty != nil {
			hooks.OnEmpty(1, curve.CPoint{I: j + 1, F: 0}, curve.CPoint{I: i, F: 0}, curve.CPoint{I: i + 1, F: 0})
		}
	} else if hooks.OnReachable != nil {
		iv := curve.NewCInterval(curve.NewCPoint(i, outTop.Begin), curve.NewCPoint(i, outTop.End))
		hooks.OnReachable(0, 1, curve.CPoint{I: j + 1, F: 0}, iv)
	}

	if outRight.IsEmpty() {
		if hooks.OnEmpty != nil {
			hooks.OnEmpty(0, curve.CPoint{I: i + 1, F: 0}, curve.CPoint{I: j, F: 0}, curve.CPoint{I: j + 1, F: 0})
		}
	} else if hooks.OnReachable != nil {
		iv := curve.NewCInterval(curve.NewCPoint(j, outRight.Begin), curve.NewCPoint(j, outRight.End))
		hooks.OnReachable(1, 0, curve.CPoint{I: i + 1, F: 0}, iv)
	}
}

// answer reports whether the top-right corner of the diagram was
// reached.
func (g *naiveGrid) answer() bool {
	if g.n == 1 || g.m == 1 {
		ans, _ := lessThanDegenerate(g.P, g.Q, g.delta)
		return ans
	}

	top := g.H[g.n-2][g.m-1]
	if !top.IsEmpty() && top.End >= 1-geom.Eps {
		return true
	}
	right := g.V[g.n-1][g.m-2]

	return !right.IsEmpty() && right.End >= 1-geom.Eps
}

// LessThanNaive decides lessThan(delta, P, Q) via the full O(n*m)
// per-cell free-space decider, the ground-truth reference spec §1 and
// §8's correctness property are checked against.
func LessThanNaive(P, Q *curve.Curve, delta float64, hooks *Hooks) bool {
	if ans, ok := lessThanDegenerate(P, Q, delta); ok {
		return ans
	}

	return runNaive(P, Q, delta, hooks).answer()
}
