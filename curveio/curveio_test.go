package curveio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chaot4/frechet-distance/curveio"
)

func TestReadCurve_ParsesAndDropsDuplicates(t *testing.T) {
	r := strings.NewReader("0 0\n0 0\n1 0\n\n2 1 ignored-trailing\n")
	c, err := curveio.ReadCurve(r)
	require.NoError(t, err)
	require.Equal(t, 3, c.Len())
}

func TestReadCurve_RejectsMalformedLine(t *testing.T) {
	_, err := curveio.ReadCurve(strings.NewReader("0 0\nonly-one-field\n"))
	require.ErrorIs(t, err, curveio.ErrMalformedLine)
}

func TestWriteCurve_RoundTrips(t *testing.T) {
	c, err := curveio.ReadCurve(strings.NewReader("0 0\n3 4\n5 0\n"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, curveio.WriteCurve(&buf, c))

	c2, err := curveio.ReadCurve(&buf)
	require.NoError(t, err)
	require.Equal(t, c.Len(), c2.Len())
	for i := 0; i < c.Len(); i++ {
		require.InDelta(t, c.Point(i).X, c2.Point(i).X, 1e-9)
		require.InDelta(t, c.Point(i).Y, c2.Point(i).Y, 1e-9)
	}
}

func TestReadIndex_SkipsBlankLines(t *testing.T) {
	names, err := curveio.ReadIndex(strings.NewReader("a.curve\n\nb.curve\n  \nc.curve\n"))
	require.NoError(t, err)
	require.Equal(t, []string{"a.curve", "b.curve", "c.curve"}, names)
}

func TestReadQueries_ParsesBothForms(t *testing.T) {
	queries, err := curveio.ReadQueries(strings.NewReader("q.curve 1.5\na.curve b.curve 2.0\n"))
	require.NoError(t, err)
	require.Len(t, queries, 2)
	require.Equal(t, curveio.Query{Curve1: "q.curve", Delta: 1.5}, queries[0])
	require.Equal(t, curveio.Query{Curve1: "a.curve", Curve2: "b.curve", Delta: 2.0}, queries[1])
}

func TestReadQueries_RejectsBadFieldCount(t *testing.T) {
	_, err := curveio.ReadQueries(strings.NewReader("just-one-field\n"))
	require.ErrorIs(t, err, curveio.ErrMalformedLine)
}

func TestWriteResults_FormatsLines(t *testing.T) {
	var buf bytes.Buffer
	err := curveio.WriteResults(&buf, []curveio.ResultLine{
		{QueryIndex: 0, Matches: []string{"a.curve", "b.curve"}},
		{QueryIndex: 1, Matches: nil},
	})
	require.NoError(t, err)
	require.Equal(t, "0: a.curve b.curve\n1:\n", buf.String())
}
