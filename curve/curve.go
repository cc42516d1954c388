package curve

import (
	"math"

	"github.com/chaot4/frechet-distance/geom"
)

// ID is a phantom-typed curve identifier, preventing a CInterval built
// against one curve from being silently mixed up with the other. It is
// always 0 or 1 in a two-curve decider call, but kept as a distinct type
// (not a bool) so a third curve can be added later without renaming.
type ID int

// Other returns the identifier of "the other curve" in a two-curve call.
func (id ID) Other() ID {
	return 1 - id
}

// Curve is an immutable ordered sequence of points, with a precomputed
// prefix arc-length table and cached bounding box. Consecutive duplicate
// points are removed at construction (the invariant spec.md requires).
type Curve struct {
	points []geom.Point
	// prefixLen[i] is the arc length of the first i segments; prefixLen[0]==0.
	prefixLen []float64
	bbox      geom.BBox
}

// New builds a Curve from pts, dropping consecutive duplicates and
// rejecting non-finite coordinates. Returns ErrEmptyCurve if pts is empty
// after deduplication.
func New(pts []geom.Point) (*Curve, error) {
	if len(pts) == 0 {
		return nil, ErrEmptyCurve
	}

	deduped := make([]geom.Point, 0, len(pts))
	for _, p := range pts {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return nil, ErrNaNCoordinate
		}
		if len(deduped) > 0 && deduped[len(deduped)-1] == p {
			continue
		}
		deduped = append(deduped, p)
	}
	if len(deduped) == 0 {
		return nil, ErrEmptyCurve
	}

	prefixLen := make([]float64, len(deduped))
	bbox := geom.EmptyBBox()
	bbox = bbox.Extend(deduped[0])
	for i := 1; i < len(deduped); i++ {
		prefixLen[i] = prefixLen[i-1] + deduped[i-1].Dist(deduped[i])
		bbox = bbox.Extend(deduped[i])
	}

	return &Curve{points: deduped, prefixLen: prefixLen, bbox: bbox}, nil
}

// Len returns the number of points in c.
func (c *Curve) Len() int {
	return len(c.points)
}

// Point returns the i-th vertex of c.
func (c *Curve) Point(i int) geom.Point {
	return c.points[i]
}

// Points returns the underlying point slice. Callers must not mutate it.
func (c *Curve) Points() []geom.Point {
	return c.points
}

// BBox returns c's cached axis-aligned bounding box.
func (c *Curve) BBox() geom.BBox {
	return c.bbox
}

// At evaluates the continuous position p on c, returning
// (1-f)*c[i] + f*c[i+1] for f>0, or c[i] for f==0.
func (c *Curve) At(p CPoint) geom.Point {
	if p.F == 0 {
		return c.points[p.I]
	}

	return c.points[p.I].Lerp(c.points[p.I+1], p.F)
}

// Length returns the arc length of c between vertex indices i and j
// (i<=j), i.e. L[j]-L[i].
func (c *Curve) Length(i, j int) float64 {
	return c.prefixLen[j] - c.prefixLen[i]
}

// PrefixLength returns L[i], the arc length of the first i segments.
func (c *Curve) PrefixLength(i int) float64 {
	return c.prefixLen[i]
}

// Front returns the first vertex.
func (c *Curve) Front() geom.Point {
	return c.points[0]
}

// Back returns the last vertex.
func (c *Curve) Back() geom.Point {
	return c.points[len(c.points)-1]
}

// Signature returns the 8-D KD-tree key described in spec §4.7:
// (front.x, front.y, back.x, back.y, min_x, min_y, max_x, max_y).
func (c *Curve) Signature() [8]float64 {
	b := c.bbox

	return [8]float64{
		c.Front().X, c.Front().Y,
		c.Back().X, c.Back().Y,
		b.MinX, b.MinY, b.MaxX, b.MaxY,
	}
}
