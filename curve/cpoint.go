package curve

import "github.com/chaot4/frechet-distance/internal/debugflag"

// CPoint is a continuous position on a curve: a segment index I in
// [0, n-1] and a fraction F in [0, 1). Immediately after any arithmetic,
// if F would equal 1.0 it is normalized to (I+1, 0), per spec.md's
// invariant.
type CPoint struct {
	I int
	F float64
}

// normalize carries a fraction of exactly 1 into the next index.
func normalize(i int, f float64) CPoint {
	debugflag.Assert(f >= 0 && f <= 1, "CPoint fraction out of [0,1] before normalization")

	if f == 1 {
		return CPoint{I: i + 1, F: 0}
	}

	return CPoint{I: i, F: f}
}

// NewCPoint constructs a normalized CPoint.
func NewCPoint(i int, f float64) CPoint {
	return normalize(i, f)
}

// Compare returns -1, 0, or 1 following the lexicographic order on
// (I, F).
func (p CPoint) Compare(other CPoint) int {
	switch {
	case p.I < other.I:
		return -1
	case p.I > other.I:
		return 1
	case p.F < other.F:
		return -1
	case p.F > other.F:
		return 1
	default:
		return 0
	}
}

// Less reports whether p < other.
func (p CPoint) Less(other CPoint) bool { return p.Compare(other) < 0 }

// LessEq reports whether p <= other.
func (p CPoint) LessEq(other CPoint) bool { return p.Compare(other) <= 0 }

// Greater reports whether p > other.
func (p CPoint) Greater(other CPoint) bool { return p.Compare(other) > 0 }

// GreaterEq reports whether p >= other.
func (p CPoint) GreaterEq(other CPoint) bool { return p.Compare(other) >= 0 }

// Equal reports whether p == other.
func (p CPoint) Equal(other CPoint) bool { return p.Compare(other) == 0 }

// Add returns p shifted forward by delta, where 0 <= delta <= 1, carrying
// into the next index if the fraction overflows.
func (p CPoint) Add(delta float64) CPoint {
	f := p.F + delta
	i := p.I
	if f > 1 {
		i++
		f -= 1
	}

	return normalize(i, f)
}

// Sub returns p shifted backward by delta, where 0 <= delta <= 1,
// borrowing from the previous index if the fraction underflows.
func (p CPoint) Sub(delta float64) CPoint {
	f := p.F - delta
	i := p.I
	if f < 0 {
		i--
		f += 1
	}

	return normalize(i, f)
}

// Ceil rounds p up to the next integer position (its own index if F==0,
// else the next index).
func (p CPoint) Ceil() CPoint {
	if p.F > 0 {
		return CPoint{I: p.I + 1, F: 0}
	}

	return CPoint{I: p.I, F: 0}
}

// Floor rounds p down to its own integer index.
func (p CPoint) Floor() CPoint {
	return CPoint{I: p.I, F: 0}
}

// Convert returns the real-valued position I+F.
func (p CPoint) Convert() float64 {
	return float64(p.I) + p.F
}

// CPosition pairs a CPoint on each of the two curves of a decider call,
// e.g. a point in the free-space diagram or a step of a certificate's
// traversal.
type CPosition struct {
	P, Q CPoint
}
