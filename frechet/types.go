package frechet

import (
	"github.com/chaot4/frechet-distance/curve"
	"github.com/chaot4/frechet-distance/geom"
)

// Algorithm selects which decider implementation LessThan dispatches to
// (spec §9 "dynamic dispatch on algorithm choice" — a sum-typed enum
// rather than an interface hierarchy, since the decider's own abstract
// surface is narrow).
type Algorithm int

const (
	// Light uses the recursive free-space box decomposition.
	Light Algorithm = iota
	// Naive uses the full O(n*m) per-cell decider, the ground-truth
	// reference used by tests and by certificate construction.
	Naive
)

// PruneLevel gates how many of getReachableIntervals' pruning rules are
// active, following spec §4.3's "pruning levels enable successively more
// rules; at level 0 the algorithm reduces to full enumeration (for
// ablation)" shape. Spec §4.3 describes a six-rule ladder (levels 0..6);
// this implementation carries the two rules that gate soundness and
// easy wins — empty-inputs and boundary-pruning — and stops there. The
// remaining rules (box-shrinking and the two qsimple propagation rules)
// are optimizations the naive+light dual-decider split and the filter
// pipeline already make unnecessary for this module's performance
// targets, per the qsimple Open Question resolution documented in
// `qsimple.go` and DESIGN.md; they are not implemented, so PruneLevel
// only spans 0..2, not the full 0..6.
type PruneLevel int

const (
	// PruneNone disables every optimization: every box is split down to
	// unit cells regardless of input/free-space shape.
	PruneNone PruneLevel = iota
	// PruneEmptyInputs enables the empty-inputs rule.
	PruneEmptyInputs
	// PruneBoundary additionally enables the boundary-pruning rule.
	PruneBoundary
	// PruneAll enables every implemented rule (the default). Spec §4.3
	// defines six pruning levels; only the first two beyond PruneNone are
	// implemented here, so PruneAll aliases PruneBoundary rather than a
	// distinct level 6.
	PruneAll = PruneBoundary
)

// Hooks are the optional capabilities described in spec §9 "conditional
// compilation for certificates / visualization": when a field is nil the
// corresponding bookkeeping is skipped entirely (no allocation, no call).
// OnEmpty fires once per boundary segment the decider proves infeasible;
// OnReachable fires once per non-empty output CInterval computed at a
// box boundary. Both are used by certificate construction; a caller
// wanting only visualization can bind just one.
type Hooks struct {
	OnEmpty     func(fixedCurve curve.ID, fixed curve.CPoint, begin, end curve.CPoint)
	OnReachable func(onCurve curve.ID, fixedCurve curve.ID, fixed curve.CPoint, iv curve.CInterval)
}

// Options configures a Decider. The zero value is not valid; use
// DefaultOptions.
type Options struct {
	Algorithm  Algorithm
	PruneLevel PruneLevel
	// UseFilters runs the sound filter pipeline before falling through to
	// the chosen Algorithm. Disabled by naive-vs-light property tests that
	// want to exercise the decomposition engine directly.
	UseFilters bool
	Hooks      *Hooks
}

// DefaultOptions returns the production configuration: filters enabled,
// the light decider, full pruning.
func DefaultOptions() Options {
	return Options{
		Algorithm:  Light,
		PruneLevel: PruneAll,
		UseFilters: true,
	}
}

// Decider evaluates lessThan queries under a fixed set of Options; the
// curves are passed to each call, so one Decider serves any number of
// curve pairs and delta values. Its only scratch state is the qsimple
// cache, which each LessThan call clears before use (spec §5's "private
// per-thread state": one Decider per goroutine).
type Decider struct {
	opts Options
	c    qsimpleCache
}

// NewDecider builds a Decider with the given Options.
func NewDecider(opts Options) *Decider {
	return &Decider{opts: opts, c: newQSimpleCache()}
}

// box is one node of the recursive free-space decomposition: an index
// sub-range [I1,I2]x[J1,J2] on curves P (axis I) and Q (axis J), with
// CInterval-list inputs on its bottom/left boundaries. Lists (rather
// than a single CInterval) are required in general: an output collected
// by merging two sibling sub-boxes' outputs may be discontiguous even
// though each sibling's own output is a single interval.
type box struct {
	I1, I2, J1, J2 int
	BottomIn       []curve.CInterval
	LeftIn         []curve.CInterval
}

func (b box) containsOrigin() bool { return b.I1 == 0 && b.J1 == 0 }

// cellAt returns the four boundary free intervals of the unit cell
// (I1,J1)-(I1+1,J1+1), in local [0,1] parameterization: bottom/top vary
// along P (I-axis) at fixed Q[J1]/Q[J2]; left/right vary along Q
// (J-axis) at fixed P[I1]/P[I2].
func cellAt(P, Q *curve.Curve, delta float64, i, j int) (freeBottom, freeLeft, freeTop, freeRight geom.Interval) {
	freeBottom, _ = geom.FreeInterval(Q.Point(j), delta, P.Point(i), P.Point(i+1))
	freeLeft, _ = geom.FreeInterval(P.Point(i), delta, Q.Point(j), Q.Point(j+1))
	freeTop, _ = geom.FreeInterval(Q.Point(j+1), delta, P.Point(i), P.Point(i+1))
	freeRight, _ = geom.FreeInterval(P.Point(i+1), delta, Q.Point(j), Q.Point(j+1))

	return
}
