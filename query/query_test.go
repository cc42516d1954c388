package query_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chaot4/frechet-distance/curve"
	"github.com/chaot4/frechet-distance/frechet"
	"github.com/chaot4/frechet-distance/geom"
	"github.com/chaot4/frechet-distance/metrics"
	"github.com/chaot4/frechet-distance/query"
)

func randomCurve(t *testing.T, rng *rand.Rand, n int) *curve.Curve {
	t.Helper()

	pts := make([]geom.Point, n)
	for i := range pts {
		pts[i] = geom.Point{X: rng.Float64() * 15, Y: rng.Float64() * 15}
	}

	c, err := curve.New(pts)
	require.NoError(t, err)

	return c
}

func resultIDs(results []query.Result) []int {
	ids := make([]int, len(results))
	for i, r := range results {
		ids[i] = r.ID
	}
	sort.Ints(ids)

	return ids
}

func TestRangeQuery_MatchesNaiveBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(808))

	curves := make([]*curve.Curve, 25)
	for i := range curves {
		curves[i] = randomCurve(t, rng, 3+rng.Intn(5))
	}
	db := query.NewDatabase(curves)

	for trial := 0; trial < 10; trial++ {
		q := randomCurve(t, rng, 3+rng.Intn(5))
		delta := 1 + rng.Float64()*5

		results, err := db.RangeQuery(q, delta, query.DefaultOptions(), nil)
		require.NoError(t, err)

		want := []int{}
		for i, c := range curves {
			if frechet.LessThanNaive(q, c, delta, nil) {
				want = append(want, i)
			}
		}
		sort.Ints(want)

		require.Equal(t, want, resultIDs(results), "trial %d", trial)
	}
}

func TestParallelRangeQuery_MatchesSerial(t *testing.T) {
	rng := rand.New(rand.NewSource(909))

	curves := make([]*curve.Curve, 40)
	for i := range curves {
		curves[i] = randomCurve(t, rng, 3+rng.Intn(5))
	}
	db := query.NewDatabase(curves)

	q := randomCurve(t, rng, 4)
	delta := 2 + rng.Float64()*4

	serial, err := db.RangeQuery(q, delta, query.DefaultOptions(), nil)
	require.NoError(t, err)

	var m metrics.Metrics
	parallel, err := db.ParallelRangeQuery(q, delta, query.DefaultOptions(), 4, &m)
	require.NoError(t, err)

	require.Equal(t, resultIDs(serial), resultIDs(parallel))
}

func TestRangeQuery_WithCertificates(t *testing.T) {
	rng := rand.New(rand.NewSource(1212))

	curves := []*curve.Curve{randomCurve(t, rng, 4), randomCurve(t, rng, 5)}
	db := query.NewDatabase(curves)

	q := curves[0]
	opts := query.DefaultOptions()
	opts.WithCertificates = true

	results, err := db.RangeQuery(q, 1e6, opts, nil)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	for _, r := range results {
		require.NoError(t, r.CertErr)
		require.NotNil(t, r.Certificate)
		require.True(t, r.Certificate.Verified)
	}
}

func TestRangeQuery_ErrorsOnEmptyQuery(t *testing.T) {
	db := query.NewDatabase(nil)
	_, err := db.RangeQuery(nil, 1, query.DefaultOptions(), nil)
	require.ErrorIs(t, err, frechet.ErrDimensionMismatch)
}
