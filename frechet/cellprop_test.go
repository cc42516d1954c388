package frechet

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chaot4/frechet-distance/curve"
	"github.com/chaot4/frechet-distance/geom"
)

func TestCellOutputs_EmptyInputsYieldEmptyOutputs(t *testing.T) {
	free := geom.Interval{Begin: 0, End: 1}
	top, right := cellOutputs(free, free, free, free, geom.EmptyInterval(), geom.EmptyInterval())
	require.True(t, top.IsEmpty())
	require.True(t, right.IsEmpty())
}

func TestCellOutputs_NonEmptyLeftMakesWholeTopReachable(t *testing.T) {
	freeTop := geom.Interval{Begin: 0.2, End: 0.9}
	top, _ := cellOutputs(geom.Interval{Begin: 0, End: 1}, geom.Interval{Begin: 0, End: 1}, freeTop, geom.Interval{Begin: 0, End: 1},
		geom.EmptyInterval(), geom.Interval{Begin: 0.5, End: 1})
	require.False(t, top.IsEmpty())
	require.InDelta(t, freeTop.Begin, top.Begin, 1e-9)
	require.InDelta(t, freeTop.End, top.End, 1e-9)
}

func TestCellOutputs_NonEmptyBottomBoundsTopByItsOwnBegin(t *testing.T) {
	freeTop := geom.Interval{Begin: 0, End: 1}
	top, _ := cellOutputs(geom.Interval{Begin: 0, End: 1}, geom.Interval{Begin: 0, End: 1}, freeTop, geom.Interval{Begin: 0, End: 1},
		geom.Interval{Begin: 0.4, End: 1}, geom.EmptyInterval())
	require.False(t, top.IsEmpty())
	require.InDelta(t, 0.4, top.Begin, 1e-9)
	require.InDelta(t, 1, top.End, 1e-9)
}

func TestCellOutputs_FreeTopEmptyForcesOutputEmpty(t *testing.T) {
	top, _ := cellOutputs(geom.Interval{Begin: 0, End: 1}, geom.Interval{Begin: 0, End: 1}, geom.EmptyInterval(), geom.Interval{Begin: 0, End: 1},
		geom.Interval{Begin: 0, End: 1}, geom.Interval{Begin: 0, End: 1})
	require.True(t, top.IsEmpty())
}

func TestQSimpleCache_ClampedBBoxDistance(t *testing.T) {
	c, err := curve.New([]geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}})
	require.NoError(t, err)

	cache := newQSimpleCache()
	far := cache.tooFarFromSubcurve(c, 0, 0, 0, 2, geom.Point{X: 100, Y: 100}, 5)
	require.True(t, far)

	near := cache.tooFarFromSubcurve(c, 0, 0, 0, 2, geom.Point{X: 10, Y: 5}, 5)
	require.False(t, near)
}
