// Package curveio reads and writes the plain-text file formats used by
// the command-line front-ends (spec §6): curve files, dataset index
// files, query files, and results files.
package curveio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chaot4/frechet-distance/curve"
	"github.com/chaot4/frechet-distance/geom"
)

// ErrMalformedLine is returned when a line cannot be parsed into the
// expected number of fields.
var ErrMalformedLine = errors.New("curveio: malformed line")

// ReadCurve reads a curve file: one "x y" pair per line, trailing
// content on a line ignored, blank lines skipped. Consecutive duplicate
// vertices are dropped by curve.New.
func ReadCurve(r io.Reader) (*curve.Curve, error) {
	var pts []geom.Point

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("curveio: %w: %q", ErrMalformedLine, line)
		}

		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("curveio: parse x: %w", err)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("curveio: parse y: %w", err)
		}

		pts = append(pts, geom.Point{X: x, Y: y})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("curveio: scan: %w", err)
	}

	return curve.New(pts)
}

// ReadCurveFile opens path and reads it as a curve file.
func ReadCurveFile(path string) (*curve.Curve, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("curveio: open %s: %w", path, err)
	}
	defer f.Close()

	return ReadCurve(f)
}

// WriteCurve writes c as one "x y" line per vertex.
func WriteCurve(w io.Writer, c *curve.Curve) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < c.Len(); i++ {
		p := c.Point(i)
		if _, err := fmt.Fprintf(bw, "%.17g %.17g\n", p.X, p.Y); err != nil {
			return fmt.Errorf("curveio: write: %w", err)
		}
	}

	return bw.Flush()
}

// ReadIndex reads a dataset index file: one relative filename per
// non-blank line.
func ReadIndex(r io.Reader) ([]string, error) {
	var names []string

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		names = append(names, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("curveio: scan index: %w", err)
	}

	return names, nil
}

// ReadIndexFile opens path and reads it as a dataset index file.
func ReadIndexFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("curveio: open %s: %w", path, err)
	}
	defer f.Close()

	return ReadIndex(f)
}

// Query is one line of a query file: either a range query against a
// dataset (Curve2 == "") or a direct pairwise distance/decision query
// between two curve files.
type Query struct {
	Curve1, Curve2 string
	Delta          float64
}

// ReadQueries reads a query file: lines of the form "curve delta" (a
// range query against a dataset) or "curve1 curve2 delta" (a direct
// pairwise query). Blank lines are skipped.
func ReadQueries(r io.Reader) ([]Query, error) {
	var queries []Query

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)

		var q Query
		var err error
		switch len(fields) {
		case 2:
			q.Curve1 = fields[0]
			q.Delta, err = strconv.ParseFloat(fields[1], 64)
		case 3:
			q.Curve1 = fields[0]
			q.Curve2 = fields[1]
			q.Delta, err = strconv.ParseFloat(fields[2], 64)
		default:
			return nil, fmt.Errorf("curveio: %w: %q", ErrMalformedLine, line)
		}
		if err != nil {
			return nil, fmt.Errorf("curveio: parse delta: %w", err)
		}

		queries = append(queries, q)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("curveio: scan queries: %w", err)
	}

	return queries, nil
}

// ReadQueryFile opens path and reads it as a query file.
func ReadQueryFile(path string) ([]Query, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("curveio: open %s: %w", path, err)
	}
	defer f.Close()

	return ReadQueries(f)
}

// ResultLine is one line of a results file: the query index and the
// matching dataset indices/filenames.
type ResultLine struct {
	QueryIndex int
	Matches    []string
}

// WriteResults writes one line per ResultLine: "queryIndex: match1 match2 ...".
func WriteResults(w io.Writer, lines []ResultLine) error {
	bw := bufio.NewWriter(w)
	for _, l := range lines {
		if _, err := fmt.Fprintf(bw, "%d:", l.QueryIndex); err != nil {
			return fmt.Errorf("curveio: write results: %w", err)
		}
		for _, m := range l.Matches {
			if _, err := fmt.Fprintf(bw, " %s", m); err != nil {
				return fmt.Errorf("curveio: write results: %w", err)
			}
		}
		if _, err := fmt.Fprintln(bw); err != nil {
			return fmt.Errorf("curveio: write results: %w", err)
		}
	}

	return bw.Flush()
}
