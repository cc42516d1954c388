package kdtree_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chaot4/frechet-distance/kdtree"
)

func sqDist(a, b float64) float64 {
	return a*a + b*b
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}

	return v
}

func TestRangeSearch_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(17))

	for trial := 0; trial < 20; trial++ {
		n := 5 + rng.Intn(40)
		sigs := make([]kdtree.Signature, n)
		for i := range sigs {
			for d := 0; d < 8; d++ {
				sigs[i][d] = rng.Float64() * 20
			}
		}

		tree := kdtree.Build(sigs)
		require.Equal(t, n, tree.Len())

		q := sigs[rng.Intn(n)]
		delta := 1 + rng.Float64()*5

		want := bruteForceExact(sigs, q, delta)
		got := tree.RangeSearch(q, delta)

		sort.Ints(want)
		sort.Ints(got)
		require.Equal(t, want, got, "trial %d", trial)
	}
}

// bruteForceExact mirrors kdtree's own nearness predicate exactly
// (Euclidean on front/back, Chebyshev on bbox), independent of the
// tree's traversal/pruning logic.
func bruteForceExact(sigs []kdtree.Signature, q kdtree.Signature, delta float64) []int {
	var out []int
	for i, s := range sigs {
		frontDist := sqDist(q[0]-s[0], q[1]-s[1])
		backDist := sqDist(q[2]-s[2], q[3]-s[3])
		if frontDist > delta*delta || backDist > delta*delta {
			continue
		}
		ok := true
		for d := 4; d < 8; d++ {
			if abs(q[d]-s[d]) > delta {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, i)
		}
	}

	return out
}

func TestRangeSearch_IncludesSelf(t *testing.T) {
	sigs := []kdtree.Signature{
		{0, 0, 1, 1, 0, 0, 1, 1},
		{10, 10, 11, 11, 10, 10, 11, 11},
	}
	tree := kdtree.Build(sigs)

	got := tree.RangeSearch(sigs[0], 1e-9)
	require.Contains(t, got, 0)
	require.NotContains(t, got, 1)
}

func TestRangeSearch_EmptyTree(t *testing.T) {
	tree := kdtree.Build(nil)
	require.Equal(t, 0, tree.Len())
	require.Empty(t, tree.RangeSearch(kdtree.Signature{}, 5))
}
