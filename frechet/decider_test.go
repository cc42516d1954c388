package frechet_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chaot4/frechet-distance/curve"
	"github.com/chaot4/frechet-distance/frechet"
	"github.com/chaot4/frechet-distance/geom"
)

func mustCurve(t *testing.T, pts []geom.Point) *curve.Curve {
	t.Helper()
	c, err := curve.New(pts)
	require.NoError(t, err)

	return c
}

func TestLessThan_AgreesWithNaive_OnRandomCurves(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 40; trial++ {
		P := mustCurve(t, randomPoints(rng, 3+rng.Intn(5)))
		Q := mustCurve(t, randomPoints(rng, 3+rng.Intn(5)))
		delta := 0.2 + rng.Float64()*3

		naive := frechet.LessThanNaive(P, Q, delta, nil)

		light, _ := frechet.LessThanLight(P, Q, delta, frechet.Options{
			Algorithm:  frechet.Light,
			PruneLevel: frechet.PruneAll,
		})
		require.Equal(t, naive, light, "trial %d: delta=%v", trial, delta)

		d := frechet.NewDecider(frechet.DefaultOptions())
		withFilters, err := d.LessThan(P, Q, delta, nil)
		require.NoError(t, err)
		require.Equal(t, naive, withFilters, "trial %d (filters): delta=%v", trial, delta)
	}
}

func TestLessThan_MonotoneInDelta(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	P := mustCurve(t, randomPoints(rng, 6))
	Q := mustCurve(t, randomPoints(rng, 6))

	var lastTrue bool
	var sawTrue bool
	for _, delta := range []float64{0.01, 0.1, 0.5, 1, 2, 5, 20} {
		ans := frechet.LessThanNaive(P, Q, delta, nil)
		if sawTrue {
			require.True(t, ans, "lessThan must stay true once true as delta grows; delta=%v", delta)
		}
		if ans {
			sawTrue = true
		}
		lastTrue = ans
	}
	require.True(t, lastTrue, "sufficiently large delta must decide true")
}

func TestLessThan_ReflexiveForIdenticalCurves(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	P := mustCurve(t, randomPoints(rng, 5))

	ans := frechet.LessThanNaive(P, P, 1e-6, nil)
	require.True(t, ans)
}

func TestLessThan_SymmetricUnderCurveSwap(t *testing.T) {
	rng := rand.New(rand.NewSource(123))

	for trial := 0; trial < 20; trial++ {
		P := mustCurve(t, randomPoints(rng, 4+rng.Intn(4)))
		Q := mustCurve(t, randomPoints(rng, 4+rng.Intn(4)))
		delta := 0.3 + rng.Float64()*2

		pq := frechet.LessThanNaive(P, Q, delta, nil)
		qp := frechet.LessThanNaive(Q, P, delta, nil)
		require.Equal(t, pq, qp, "trial %d", trial)
	}
}

func TestLessThan_ErrorsOnEmptyCurve(t *testing.T) {
	d := frechet.NewDecider(frechet.DefaultOptions())
	_, err := d.LessThan(nil, nil, 1, nil)
	require.ErrorIs(t, err, frechet.ErrDimensionMismatch)
}

func TestCertificate_MatchesLessThanAndVerifies(t *testing.T) {
	rng := rand.New(rand.NewSource(55))

	for trial := 0; trial < 20; trial++ {
		P := mustCurve(t, randomPoints(rng, 3+rng.Intn(4)))
		Q := mustCurve(t, randomPoints(rng, 3+rng.Intn(4)))
		delta := 0.2 + rng.Float64()*3

		ans := frechet.LessThanNaive(P, Q, delta, nil)

		d := frechet.NewDecider(frechet.DefaultOptions())
		cert, err := d.Certificate(P, Q, delta, nil)
		require.NoError(t, err)
		require.Equal(t, ans, cert.LessThan, "trial %d", trial)
		require.True(t, cert.Verified, "trial %d", trial)
		require.True(t, frechet.CheckCertificate(P, Q, delta, cert))
	}
}

// TestCertificate_NOWithFeasibleCorners exercises the case
// reconstructNO's old, hardcoded-corner anchoring got wrong: P and Q
// start and end close together (so the raw diagram corners (n-1,0) and
// (0,m-1) are both individually feasible), yet they diverge through a
// far waypoint in the middle, so the true Fréchet distance is well over
// delta. A NO certificate anchored at those feasible corners fails
// checkNO's own infeasibility check on first/last; the fix must instead
// anchor on a genuinely infeasible recorded boundary segment.
func TestCertificate_NOWithFeasibleCorners(t *testing.T) {
	P := mustCurve(t, []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}})
	Q := mustCurve(t, []geom.Point{
		{X: 10, Y: 0.1},
		{X: 5, Y: 100},
		{X: 0, Y: 0.1},
	})
	delta := 1.0

	ans := frechet.LessThanNaive(P, Q, delta, nil)
	require.False(t, ans, "middle waypoint is ~100 away from P, far past delta")

	d := frechet.NewDecider(frechet.DefaultOptions())
	cert, err := d.Certificate(P, Q, delta, nil)
	require.NoError(t, err)
	require.False(t, cert.LessThan)
	require.True(t, cert.Verified)
	require.True(t, frechet.CheckCertificate(P, Q, delta, cert))
}

func randomPoints(rng *rand.Rand, n int) []geom.Point {
	pts := make([]geom.Point, n)
	for i := range pts {
		pts[i] = geom.Point{X: rng.Float64() * 10, Y: rng.Float64() * 10}
	}

	return pts
}
