package frechet_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chaot4/frechet-distance/frechet"
	"github.com/chaot4/frechet-distance/geom"
)

func TestDistance_MatchesDecisionBoundary(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))

	for trial := 0; trial < 25; trial++ {
		P := mustCurve(t, randomPoints(rng, 3+rng.Intn(4)))
		Q := mustCurve(t, randomPoints(rng, 3+rng.Intn(4)))

		dist, err := frechet.Distance(P, Q, frechet.DefaultOptions())
		require.NoError(t, err)

		require.True(t, frechet.LessThanNaive(P, Q, dist+1e-6, nil), "trial %d: dist=%v", trial, dist)
		require.False(t, frechet.LessThanNaive(P, Q, dist-1e-6, nil), "trial %d: dist=%v", trial, dist)
	}
}

func TestDistance_Reflexive(t *testing.T) {
	P := mustCurve(t, []geom.Point{{X: 0, Y: 0}, {X: 3, Y: 4}, {X: 5, Y: 0}})

	dist, err := frechet.Distance(P, P, frechet.DefaultOptions())
	require.NoError(t, err)
	require.InDelta(t, 0, dist, 1e-9)
}

func TestDistance_SimpleParallelSegments(t *testing.T) {
	P := mustCurve(t, []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}})
	Q := mustCurve(t, []geom.Point{{X: 0, Y: 3}, {X: 10, Y: 3}})

	dist, err := frechet.Distance(P, Q, frechet.DefaultOptions())
	require.NoError(t, err)
	require.InDelta(t, 3, dist, 1e-9)
}

func TestDistance_ErrorsOnEmptyCurve(t *testing.T) {
	_, err := frechet.Distance(nil, nil, frechet.DefaultOptions())
	require.ErrorIs(t, err, frechet.ErrDimensionMismatch)
}

func TestDistance_NeverNegative(t *testing.T) {
	rng := rand.New(rand.NewSource(303))

	for trial := 0; trial < 15; trial++ {
		P := mustCurve(t, randomPoints(rng, 2+rng.Intn(5)))
		Q := mustCurve(t, randomPoints(rng, 2+rng.Intn(5)))

		dist, err := frechet.Distance(P, Q, frechet.DefaultOptions())
		require.NoError(t, err)
		require.False(t, math.IsNaN(dist))
		require.GreaterOrEqual(t, dist, 0.0)
	}
}
