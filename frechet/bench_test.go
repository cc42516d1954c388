package frechet_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chaot4/frechet-distance/frechet"
	"github.com/chaot4/frechet-distance/geom"
)

func TestRunSelectedAlgorithm_LightAndNaiveAgree(t *testing.T) {
	P := mustCurve(t, []geom.Point{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 10, Y: 3}})
	Q := mustCurve(t, []geom.Point{{X: 0, Y: 1}, {X: 5, Y: 1}, {X: 10, Y: 4}})

	for _, name := range []string{"light", "naive"} {
		ans, err := frechet.RunSelectedAlgorithm(name, P, Q, 2)
		require.NoError(t, err)
		require.True(t, ans, name)
	}
}

func TestRunSelectedAlgorithm_UnknownNameErrors(t *testing.T) {
	P := mustCurve(t, []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}})
	_, err := frechet.RunSelectedAlgorithm("bogus", P, P, 1)
	require.Error(t, err)
}
