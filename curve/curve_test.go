package curve_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chaot4/frechet-distance/curve"
	"github.com/chaot4/frechet-distance/geom"
)

func TestNew_DropsConsecutiveDuplicates(t *testing.T) {
	pts := []geom.Point{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	c, err := curve.New(pts)
	require.NoError(t, err)
	require.Equal(t, 3, c.Len())
	require.InDelta(t, 2.0, c.Length(0, c.Len()-1), 1e-9)
}

func TestNew_RejectsEmptyAndNaN(t *testing.T) {
	_, err := curve.New(nil)
	require.ErrorIs(t, err, curve.ErrEmptyCurve)

	one, err := curve.New([]geom.Point{{X: 0, Y: 0}, {X: 0, Y: 0}})
	require.NoError(t, err)
	require.Equal(t, 1, one.Len())

	bad := geom.Point{X: 1, Y: 0}
	bad.X = bad.X / 0 // +Inf: still non-finite
	_, err = curve.New([]geom.Point{{X: 0, Y: 0}, bad})
	require.ErrorIs(t, err, curve.ErrNaNCoordinate)
}

func TestCPoint_NormalizesOverflow(t *testing.T) {
	p := curve.NewCPoint(3, 1.0)
	require.Equal(t, curve.CPoint{I: 4, F: 0}, p)
}

func TestCPoint_AddCarriesAndSubBorrows(t *testing.T) {
	p := curve.CPoint{I: 2, F: 0.6}
	sum := p.Add(0.7)
	require.Equal(t, 3, sum.I)
	require.InDelta(t, 0.3, sum.F, 1e-9)

	diff := p.Sub(0.8)
	require.Equal(t, 1, diff.I)
	require.InDelta(t, 0.8, diff.F, 1e-9)
}

func TestCPoint_Ordering(t *testing.T) {
	a := curve.CPoint{I: 1, F: 0.5}
	b := curve.CPoint{I: 1, F: 0.75}
	c := curve.CPoint{I: 2, F: 0}
	require.True(t, a.Less(b))
	require.True(t, b.Less(c))
	require.True(t, a.LessEq(a))
	require.True(t, c.Greater(a))
}

func TestCInterval_MergeUnionsOverlapping(t *testing.T) {
	var cis []curve.CInterval
	cis = curve.MergeCInterval(cis, curve.NewCInterval(curve.CPoint{I: 0}, curve.CPoint{I: 1}))
	cis = curve.MergeCInterval(cis, curve.NewCInterval(curve.CPoint{I: 1}, curve.CPoint{I: 2}))
	require.Len(t, cis, 1)
	require.Equal(t, curve.CPoint{I: 0}, cis[0].Begin)
	require.Equal(t, curve.CPoint{I: 2}, cis[0].End)

	cis = curve.MergeCInterval(cis, curve.NewCInterval(curve.CPoint{I: 5}, curve.CPoint{I: 6}))
	require.Len(t, cis, 2)
}

func TestCurve_Signature(t *testing.T) {
	c, err := curve.New([]geom.Point{{X: 0, Y: 0}, {X: 2, Y: 1}, {X: 4, Y: 0}})
	require.NoError(t, err)
	sig := c.Signature()
	require.Equal(t, [8]float64{0, 0, 4, 0, 0, 0, 4, 1}, sig)
}
