package geom

import "math"

// Eps is the numerical tolerance used throughout the geometry layer,
// matching the tolerance used by the free-space decider and filters.
const Eps = 1e-8

// saveEps is the half-tolerance used to sandwich the true boundary
// crossing during the bisection fallback in FreeInterval.
const saveEps = 0.5 * Eps

// Point is a point in the plane.
type Point struct {
	X, Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p scaled by mult.
func (p Point) Scale(mult float64) Point {
	return Point{X: p.X * mult, Y: p.Y * mult}
}

// Lerp returns the point (1-t)*p + t*q.
func (p Point) Lerp(q Point, t float64) Point {
	return p.Scale(1 - t).Add(q.Scale(t))
}

// DistSqr returns the squared Euclidean distance between p and q.
func (p Point) DistSqr(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y

	return dx*dx + dy*dy
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Sqrt(p.DistSqr(q))
}

// BBox is an axis-aligned bounding box.
type BBox struct {
	MinX, MinY, MaxX, MaxY float64
}

// EmptyBBox returns a bounding box whose invariant (MinX<=MaxX etc.) is
// violated, suitable as a zero element under Extend.
func EmptyBBox() BBox {
	return BBox{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
}

// Extend grows b to also contain p.
func (b BBox) Extend(p Point) BBox {
	return BBox{
		MinX: math.Min(b.MinX, p.X),
		MinY: math.Min(b.MinY, p.Y),
		MaxX: math.Max(b.MaxX, p.X),
		MaxY: math.Max(b.MaxY, p.Y),
	}
}

// WithinChebyshev reports whether every coordinate of b and other differs
// by at most delta (the bounding-box half of the §4.7 nearness predicate).
func (b BBox) WithinChebyshev(other BBox, delta float64) bool {
	return math.Abs(b.MinX-other.MinX) <= delta &&
		math.Abs(b.MinY-other.MinY) <= delta &&
		math.Abs(b.MaxX-other.MaxX) <= delta &&
		math.Abs(b.MaxY-other.MaxY) <= delta
}

// Interval is a [Begin, End] range of doubles. It is empty iff Begin > End;
// EmptyInterval is the canonical empty representative (1, 0).
type Interval struct {
	Begin, End float64
}

// EmptyInterval returns the canonical empty interval (1, 0).
func EmptyInterval() Interval {
	return Interval{Begin: 1, End: 0}
}

// IsEmpty reports whether iv is empty (Begin > End).
func (iv Interval) IsEmpty() bool {
	return iv.Begin > iv.End
}

