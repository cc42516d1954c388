package frechet

import (
	"github.com/chaot4/frechet-distance/curve"
	"github.com/chaot4/frechet-distance/geom"
	"github.com/chaot4/frechet-distance/internal/debugflag"
	"github.com/chaot4/frechet-distance/pst"
)

// Certificate is a machine-checkable witness of a lessThan answer (spec
// §4.4): for LessThan==true, a monotone feasible traversal from the
// origin to the final corner; for LessThan==false, a reverse-monotone
// chain of empty boundary segments separating the two corners. Verified
// is advisory only (spec §9 open question #2): it is populated by
// CheckCertificate, never load-bearing for the answer itself.
type Certificate struct {
	LessThan bool
	Path     []curve.CPosition
	Verified bool
}

// emptyRecord is one non-free boundary segment discovered while running
// the naive decider with hooks bound, used to mine a NO-certificate.
type emptyRecord struct {
	fixedCurve curve.ID
	fixed      curve.CPoint
	begin, end curve.CPoint
}

func cornerPosition(e emptyRecord) curve.CPosition {
	if e.fixedCurve == 0 {
		return curve.CPosition{P: e.fixed, Q: e.end}
	}

	return curve.CPosition{P: e.end, Q: e.fixed}
}

func cornerPoint(e emptyRecord) geom.Point {
	pos := cornerPosition(e)

	return geom.Point{X: pos.P.Convert(), Y: pos.Q.Convert()}
}

// ComputeCertificate runs the naive decider with hooks bound to record
// the evidence ComputeCertificate needs (grid parent marks for YES, the
// set of empty boundary segments for NO), and builds the matching
// Certificate.
func ComputeCertificate(P, Q *curve.Curve, delta float64) *Certificate {
	if ans, ok := lessThanDegenerate(P, Q, delta); ok {
		return degenerateCertificate(P, Q, delta, ans)
	}

	var empties []emptyRecord
	hooks := &Hooks{
		OnEmpty: func(fixedCurve curve.ID, fixed curve.CPoint, begin, end curve.CPoint) {
			empties = append(empties, emptyRecord{fixedCurve: fixedCurve, fixed: fixed, begin: begin, end: end})
		},
	}

	grid := runNaive(P, Q, delta, hooks)
	if grid.answer() {
		return &Certificate{LessThan: true, Path: reconstructYES(grid)}
	}

	return &Certificate{LessThan: false, Path: reconstructNO(P, Q, empties)}
}

func degenerateCertificate(P, Q *curve.Curve, delta float64, ans bool) *Certificate {
	n, m := P.Len(), Q.Len()
	start := curve.CPosition{P: curve.CPoint{I: 0}, Q: curve.CPoint{I: 0}}
	end := curve.CPosition{P: curve.CPoint{I: n - 1}, Q: curve.CPoint{I: m - 1}}

	return &Certificate{LessThan: ans, Path: []curve.CPosition{start, end}}
}

// reconstructYES walks grid.mark backwards from the final corner,
// following whichever branch (full-coverage "from the other input" or
// bounded "from this input") produced each non-empty output, emitting
// one CPosition per boundary crossing.
func reconstructYES(grid *naiveGrid) []curve.CPosition {
	n, m := grid.n, grid.m
	i, j := n-2, m-2

	exitViaTop := !grid.H[n-2][m-1].IsEmpty() && grid.H[n-2][m-1].End >= 1-geom.Eps

	var reversed []curve.CPosition
	for {
		if exitViaTop {
			top := grid.H[i][j+1]
			reversed = append(reversed, curve.CPosition{P: curve.NewCPoint(i, top.Begin), Q: curve.CPoint{I: j + 1}})

			if grid.mark[i][j].topFromLeft {
				if i == 0 {
					break
				}
				i--
				exitViaTop = false
			} else {
				if j == 0 {
					break
				}
				j--
				exitViaTop = true
			}
		} else {
			right := grid.V[i+1][j]
			reversed = append(reversed, curve.CPosition{P: curve.CPoint{I: i + 1}, Q: curve.NewCPoint(j, right.Begin)})

			if grid.mark[i][j].rightFromBottom {
				if j == 0 {
					break
				}
				j--
				exitViaTop = true
			} else {
				if i == 0 {
					break
				}
				i--
				exitViaTop = false
			}
		}
	}

	path := make([]curve.CPosition, 0, len(reversed)+2)
	path = append(path, curve.CPosition{P: curve.CPoint{I: 0}, Q: curve.CPoint{I: 0}})
	for k := len(reversed) - 1; k >= 0; k-- {
		path = append(path, reversed[k])
	}
	path = append(path, curve.CPosition{P: curve.CPoint{I: n - 1}, Q: curve.CPoint{I: m - 1}})

	return path
}

// findBoundaryEmpty returns the index of the first record in empties
// whose corner satisfies onBoundary, or ok==false if none does.
func findBoundaryEmpty(empties []emptyRecord, onBoundary func(curve.CPosition) bool) (idx int, ok bool) {
	for i, e := range empties {
		if onBoundary(cornerPosition(e)) {
			return i, true
		}
	}

	return 0, false
}

// reconstructNO mines a reverse-monotone chain of recorded infeasible
// boundary segments from an actual empty segment touching the diagram's
// lower-right entry boundary (P==n-1 or Q==0) to one touching the
// upper-left exit boundary (P==0 or Q==m-1), using the priority search
// tree (spec §4.4) to stitch intermediate empty segments in between.
//
// The endpoints must be genuinely recorded empty segments, not the bare
// diagram corners (n-1,0)/(0,m-1): those geometric corners are not
// necessarily infeasible even when the overall decider answer is NO (the
// curves can start and end near each other while diverging through a
// far waypoint), so anchoring there would hand checkNO a "NO
// certificate" whose own endpoints are actually free, which it
// correctly refuses to verify. Every record in empties, by contrast, is
// a boundary segment the naive decider found completely empty, so its
// corner points are infeasible by construction; since corner indices at
// P==0/n-1 or Q==0/m-1 sit at the extreme of their axis, any monotone
// stitch ending there automatically satisfies checkNO's ordering
// constraint relative to whatever came before it. If empties has no
// boundary-touching record at all, the NO answer came from the final
// corner cell's own interval falling short (see the fallback below),
// and the diagram's final corner is used directly instead.
func reconstructNO(P, Q *curve.Curve, empties []emptyRecord) []curve.CPosition {
	n, m := P.Len(), Q.Len()

	startIdx, startOK := findBoundaryEmpty(empties, func(pos curve.CPosition) bool {
		return pos.P.I == n-1 || pos.Q.I == 0
	})
	endIdx, endOK := findBoundaryEmpty(empties, func(pos curve.CPosition) bool {
		return pos.P.I == 0 || pos.Q.I == m-1
	})

	if !startOK || !endOK {
		// No recorded boundary segment is literally empty: every H/V entry
		// stayed non-empty, so the NO answer can only come from the final
		// corner cell's own interval falling short of reaching t=1 (see
		// naiveGrid.answer). Each cell's End is inherited unchanged from
		// the raw per-segment geom.FreeInterval regardless of upstream
		// propagation, so a final End short of 1 means P's last vertex and
		// Q's last vertex are themselves farther apart than delta: the
		// diagram's own final corner is an infeasible point, and it sits
		// on both the lower-right and upper-left boundary simultaneously
		// (P.I==n-1 and Q.I==m-1 at once), so it alone certifies NO.
		debugflag.Assert(!startOK && !endOK,
			"certificate: boundary empties found on only one side")
		corner := curve.CPosition{P: curve.CPoint{I: n - 1}, Q: curve.CPoint{I: m - 1}}

		return []curve.CPosition{corner, corner}
	}

	start := cornerPosition(empties[startIdx])
	end := cornerPosition(empties[endIdx])

	if startIdx == endIdx {
		return []curve.CPosition{start, end}
	}

	points := make([]geom.Point, 0, len(empties)-1)
	values := make([]emptyRecord, 0, len(empties)-1)
	for i, e := range empties {
		if i == startIdx {
			continue
		}
		points = append(points, cornerPoint(e))
		values = append(values, e)
	}
	tree := pst.New(points, values)

	path := []curve.CPosition{start}
	frontier := cornerPoint(empties[startIdx])

	for step := 0; step < len(empties)+1; step++ {
		var reported []emptyRecord
		tree.ReportAndDelete(frontier, &reported)

		if len(reported) == 0 {
			frontier.X -= 1
			frontier.Y += 1
			if frontier.X < -1 {
				break
			}
			continue
		}

		best := reported[0]
		bestPt := cornerPoint(best)
		for _, e := range reported[1:] {
			p := cornerPoint(e)
			if p.X < bestPt.X {
				best, bestPt = e, p
			}
		}

		pos := cornerPosition(best)
		path = append(path, pos)
		frontier = bestPt

		if pos.P.I == 0 || pos.Q.I == m-1 {
			return path
		}
	}

	last := path[len(path)-1]
	if last.P.I != 0 && last.Q.I != m-1 {
		path = append(path, end)
	}

	return path
}

// CheckCertificate independently re-verifies cert against P, Q, delta,
// without trusting anything the decider recorded.
func CheckCertificate(P, Q *curve.Curve, delta float64, cert *Certificate) bool {
	if cert == nil || len(cert.Path) < 2 {
		return false
	}

	if cert.LessThan {
		return checkYES(P, Q, delta, cert.Path)
	}

	return checkNO(P, Q, delta, cert.Path)
}

func feasible(P, Q *curve.Curve, delta float64, pos curve.CPosition) bool {
	return P.At(pos.P).Dist(Q.At(pos.Q)) <= delta+geom.Eps
}

func checkYES(P, Q *curve.Curve, delta float64, path []curve.CPosition) bool {
	n, m := P.Len(), Q.Len()
	first, last := path[0], path[len(path)-1]

	if first.P.I != 0 || first.P.F != 0 || first.Q.I != 0 || first.Q.F != 0 {
		return false
	}
	if last.P.I != n-1 || last.P.F != 0 || last.Q.I != m-1 || last.Q.F != 0 {
		return false
	}

	for i, pos := range path {
		if !feasible(P, Q, delta, pos) {
			return false
		}
		if i == 0 {
			continue
		}
		prev := path[i-1]
		if pos.P.Less(prev.P) || pos.Q.Less(prev.Q) {
			return false
		}
		if pos.P.Equal(prev.P) && pos.Q.Equal(prev.Q) {
			return false
		}
	}

	return true
}

func checkNO(P, Q *curve.Curve, delta float64, path []curve.CPosition) bool {
	n, m := P.Len(), Q.Len()
	first, last := path[0], path[len(path)-1]

	onLowerRight := first.P.I == n-1 || first.Q.I == 0
	onUpperLeft := last.P.I == 0 || last.Q.I == m-1
	if !onLowerRight || !onUpperLeft {
		return false
	}

	if feasible(P, Q, delta, first) || feasible(P, Q, delta, last) {
		return false
	}

	for i := 1; i < len(path); i++ {
		prev, cur := path[i-1], path[i]
		if cur.P.Greater(prev.P) || cur.Q.Less(prev.Q) {
			return false
		}
	}

	return true
}
