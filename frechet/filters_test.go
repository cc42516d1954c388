package frechet_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chaot4/frechet-distance/frechet"
	"github.com/chaot4/frechet-distance/geom"
)

func TestRunFilters_NeverContradictsNaive(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for trial := 0; trial < 60; trial++ {
		P := mustCurve(t, randomPoints(rng, 2+rng.Intn(6)))
		Q := mustCurve(t, randomPoints(rng, 2+rng.Intn(6)))
		delta := 0.1 + rng.Float64()*4

		res := frechet.RunFilters(P, Q, delta)
		if !res.Resolved {
			continue
		}

		naive := frechet.LessThanNaive(P, Q, delta, nil)
		require.Equal(t, naive, res.LessThan, "trial %d: delta=%v", trial, delta)
	}
}

func TestRunFilters_BichromaticExtent_ObviouslyClose(t *testing.T) {
	P := mustCurve(t, []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}})
	Q := mustCurve(t, []geom.Point{{X: 0, Y: 0.01}, {X: 1, Y: -0.01}, {X: 2, Y: 0.01}})

	res := frechet.RunFilters(P, Q, 10)
	require.True(t, res.Resolved)
	require.True(t, res.LessThan)
}

func TestRunFilters_FarApart_ResolvesNo(t *testing.T) {
	P := mustCurve(t, []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}})
	Q := mustCurve(t, []geom.Point{{X: 0, Y: 1000}, {X: 10, Y: 1000}})

	res := frechet.RunFilters(P, Q, 1)
	require.True(t, res.Resolved)
	require.False(t, res.LessThan)
}
